package helper

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/bookmyfield/backend/pkg/constant"
)

// GenerateUniqueKey generates a deterministic key from the provided map.
func GenerateUniqueKey(args map[string]string) string {
	var keys []string
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var uniqueKey string
	for _, k := range keys {
		uniqueKey += fmt.Sprintf("%s=%s;", k, args[k])
	}

	return uniqueKey
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix.
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func DefaultPagination(page, limit int) (resultPage, resultLimit int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultLimit = limit
	if resultLimit <= 0 {
		resultLimit = constant.PaginationDefaultLimit
	}

	return resultPage, resultLimit
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{5,50}$`)
	mobileRegex   = regexp.MustCompile(`^[987][0-9]{9}$`)
	fullNameRegex = regexp.MustCompile(`^[a-zA-Z ]{5,50}$`)

	passwordUpperRegex   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRegex   = regexp.MustCompile(`\d`)
	passwordSpecialRegex = regexp.MustCompile(`[@$!%*?&]`)
	passwordCharsetRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

// IsValidUsername reports whether s is 5-50 alphanumeric characters.
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsValidMobileNumber reports whether s is a 10-digit number starting with 9, 8 or 7.
func IsValidMobileNumber(s string) bool {
	return mobileRegex.MatchString(s)
}

// IsValidFullName reports whether s is 5-50 alphabetic characters and spaces.
func IsValidFullName(s string) bool {
	return fullNameRegex.MatchString(s)
}

// IsStrongPassword requires 8+ characters with an uppercase letter, a digit
// and a special character.
func IsStrongPassword(s string) bool {
	return passwordCharsetRegex.MatchString(s) &&
		passwordUpperRegex.MatchString(s) &&
		passwordDigitRegex.MatchString(s) &&
		passwordSpecialRegex.MatchString(s)
}
