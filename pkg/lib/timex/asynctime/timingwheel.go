/**
 * @Author: dingQingHui
 * @Description:
 * @File: timingwheel
 * @Version: 1.0.0
 * @Date: 2024/11/28 14:06
 */

package asynctime

import (
	"sync"
	"time"

	"github.com/RussellLuo/timingwheel"
)

const (
	tick      = time.Millisecond
	wheelSize = 3600
)

var (
	tw   *timingwheel.TimingWheel
	once sync.Once
)

// wheel 首次使用时启动全局时间轮
func wheel() *timingwheel.TimingWheel {
	once.Do(func() {
		tw = timingwheel.NewTimingWheel(tick, wheelSize)
		tw.Start()
	})
	return tw
}

// AfterFunc 在 d 之后于时间轮的协程中执行 f，返回的 Timer 可以 Stop
func AfterFunc(d time.Duration, f func()) *timingwheel.Timer {
	return wheel().AfterFunc(d, f)
}
