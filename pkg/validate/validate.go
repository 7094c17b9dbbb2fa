package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// 与 gin 绑定使用同一个 tag，handler 和 service 共享一套规则
const tagName = "binding"

var (
	once sync.Once
	std  *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		std = validator.New()
		std.SetTagName(tagName)
		RegisterFieldNames(std)
	})
	return std
}

// RegisterFieldNames 错误信息里的字段名取 json/form tag，不暴露 Go 结构体字段名
func RegisterFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func Struct(s any) error {
	return engine().Struct(s)
}

// Message 面向客户端的描述，只取第一个失败字段
func Message(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url":
		return fe.Field() + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fe.Field() + " is invalid"
}
