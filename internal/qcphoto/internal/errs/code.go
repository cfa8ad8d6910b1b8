package errs

var (
	SystemError     = ErrorCode{Code: 530001, Msg: "系统错误"}
	InvalidGoodsURL = ErrorCode{Code: 530002, Msg: "商品链接不合法"}
	UpstreamFailure = ErrorCode{Code: 530003, Msg: "上游接口响应异常"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
