package errs

var (
	SystemError       = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidEmail      = ErrorCode{Code: 520002, Msg: "邮箱格式不对"}
	AlreadyRegistered = ErrorCode{Code: 520003, Msg: "这个邮箱已经报过名了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
