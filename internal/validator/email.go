package validator

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
