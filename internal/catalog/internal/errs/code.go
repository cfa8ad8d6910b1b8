package errs

var (
	SystemError     = ErrorCode{Code: 510001, Msg: "系统错误"}
	NoProducts      = ErrorCode{Code: 510002, Msg: "目录里还没有商品"}
	NoWeeklyFinds   = ErrorCode{Code: 510003, Msg: "本周没有推广商品"}
	ProductNotFound = ErrorCode{Code: 510004, Msg: "商品不存在"}
	InvalidInput    = ErrorCode{Code: 510005, Msg: "参数不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
