package app

//对请求的参数进行验证
import (
	"AlgoDiary/model"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	zh_translations "gopkg.in/go-playground/validator.v9/translations/zh"
	"strings"
)

//安装绑定验证
func validate(s interface{}) (bool, string) {
	Validate := validator.New()
	zh_ch := zh.New()
	uni := ut.New(zh_ch)
	trans, _ := uni.GetTranslator("zh")
	zh_translations.RegisterDefaultTranslations(Validate, trans)
	errs := Validate.Struct(s)
	if errs != nil {
		var msg string
		for _, err := range errs.(validator.ValidationErrors) {
			msg += err.Translate(trans) + "\n"
		}
		return false, msg
	}
	return true, ""
}

//登陆参数验证
type loginValidtor struct {
	Username string `form:"username"  validate:"lte=20,required"`
	Password string `form:"password"  validate:"gte=6,lte=16,required,printascii"`
}

func (lv *loginValidtor) isOk() (bool, string) {
	if strings.ContainsAny(lv.Username, " \n\t\r") {
		return false, "Username 不能包含空字符"
	}
	if strings.ContainsAny(lv.Password, " \n\t\r") {
		return false, "Password 不能包含空字符"
	}
	return validate(lv)
}

//题目创建参数验证,json绑定
type exampleValidtor struct {
	Input       string `json:"input" validate:"required"`
	Output      string `json:"output" validate:"required"`
	Explanation string `json:"explanation"`
}

type tagRefValidtor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,lte=64"`
	Description string `json:"description"`
}

type problemValidtor struct {
	LeetcodeNumber int64             `json:"leetcode_number" validate:"required,gt=0"`
	Title          string            `json:"title" validate:"required,lte=128"`
	Url            string            `json:"url" validate:"lte=255"`
	Content        string            `json:"content"`
	Constraints    []string          `json:"constraints"`
	Examples       []exampleValidtor `json:"examples" validate:"dive"`
	Difficulty     string            `json:"difficulty" validate:"required"`
	Notes          string            `json:"notes"`
	Patterns       []tagRefValidtor  `json:"patterns" validate:"dive"`
	Tricks         []tagRefValidtor  `json:"tricks" validate:"dive"`
}

func (pv *problemValidtor) isOk() (bool, string) {
	if !model.IsDifficulty(pv.Difficulty) {
		return false, "Difficulty 必须是 Easy/Medium/Hard 之一"
	}
	return validate(pv)
}

//标签创建/更新参数验证
type tagValidtor struct {
	Name        string `form:"name" validate:"required,lte=64"`
	Description string `form:"description" validate:"lte=1024"`
}

func (tv *tagValidtor) isOk() (bool, string) {
	if strings.TrimSpace(tv.Name) == "" {
		return false, "Name 不能是空白字符"
	}
	return validate(tv)
}
