package errs

var (
	SystemError   = ErrorCode{Code: 540001, Msg: "系统错误"}
	MissingFields = ErrorCode{Code: 540002, Msg: "两个链接都是必填的"}
	NotifyFailure = ErrorCode{Code: 540003, Msg: "举报发送失败，稍后再试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
