package arena

import "strconv"

// Signal is the tri-state value shared by the coordinator and every worker.
type Signal int32

const (
	// 空闲，等待coordinator重新置为Active
	Idle Signal = iota
	// 有一份工作等待被某个worker认领
	Active
	// 吸收态，一旦设置不会被coordinator重置
	Terminate
)

func (s Signal) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Terminate:
		return "terminate"
	}
	return "signal(" + strconv.Itoa(int(s)) + ")"
}
