package response

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Kind string      `json:"kind,omitempty"`
	Data interface{} `json:"data"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK 成功响应
func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应；kind 为稳定的错误种类，customMsg 为空时用默认文案
func Error(code int, kind, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	r := New(code, msg, struct{}{})
	r.Kind = kind
	return r
}
