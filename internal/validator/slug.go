package validator

import "regexp"

// URLセーフなslug：小文字英数をハイフンでつなぐ（先頭末尾のハイフン不可）
var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func IsSlugLike(s string) bool {
	return slugRe.MatchString(s)
}
