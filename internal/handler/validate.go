package handler

import (
	"regexp"
	"strings"
)

// SignupForm 注册表单；形状规则走binding标签，字符集与口令强度在Validate里补齐
type SignupForm struct {
	FirstName            string `form:"firstName" binding:"required,max=50"`
	LastName             string `form:"lastName" binding:"required,max=100"`
	Username             string `form:"username" binding:"required,max=255,email"`
	Password             string `form:"password" binding:"required,min=8"`
	PasswordConfirmation string `form:"passwordConfirmation" binding:"required,eqfield=Password"`
}

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

	pwLower  = regexp.MustCompile(`[a-z]`)
	pwUpper  = regexp.MustCompile(`[A-Z]`)
	pwDigit  = regexp.MustCompile(`\d`)
	pwSymbol = regexp.MustCompile(`[@$!%*?&]`)
)

// Validate binding通过后的补充校验，返回逐字段错误；调用方只向用户展示一条笼统提示
func (f *SignupForm) Validate() []string {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Username = strings.TrimSpace(f.Username)

	var errs []string

	switch {
	case f.FirstName == "":
		errs = append(errs, "First name is required")
	case !namePattern.MatchString(f.FirstName):
		errs = append(errs, "First name can only contain letters, spaces, and hyphens")
	}

	switch {
	case f.LastName == "":
		errs = append(errs, "Last name is required")
	case !namePattern.MatchString(f.LastName):
		errs = append(errs, "Last name can only contain letters, spaces, and hyphens")
	}

	if !pwLower.MatchString(f.Password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !pwUpper.MatchString(f.Password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !pwDigit.MatchString(f.Password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !pwSymbol.MatchString(f.Password) {
		errs = append(errs, "Password must contain at least one special character")
	}

	return errs
}
