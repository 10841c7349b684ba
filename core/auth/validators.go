package auth

import (
	"fmt"
	"strings"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/gradebook/core"
)

var (
	// password policy
	pwdMinLen     = 6
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must be at least %d characters long", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to the email"
)

// InitValidators registers the password policy. core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(newPasswordStructValidation, NewPassword{})
	core.RegisterCustomTranslation(validate, translator, pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(validate, translator, pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(validate, translator, pwdAttrSimTag, pwdAttrSimText)
}

func newPasswordStructValidation(sl validator.StructLevel) {
	if np, ok := sl.Current().Interface().(NewPassword); ok && np.Password != "" {
		validatePassword(np.Password, np.Email, sl)
	}
}

// validatePassword applies the password policy:
// - minLen: 6
// - no whitespace
// - not similar to the email's local part
func validatePassword(pwd, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	if len([]rune(pwd)) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
	}

	local := strings.SplitN(email, "@", 2)[0]
	if local == "" {
		return
	}
	ratio := difflib.NewMatcher(strings.Split(strings.ToLower(pwd), ""), strings.Split(local, "")).QuickRatio()
	if ratio >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
	}
}
