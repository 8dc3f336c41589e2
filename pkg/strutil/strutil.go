package strutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 字面量时长语法: "<数量> <单位>"，如 "2 seconds"、"1 day"
var literalTimeRe = regexp.MustCompile(`^(\d+)\s*(second|minute|hour|day|year)s?$`)

// ParseLiteralTime 把字面量时长换算成相对 now 的时间点
func ParseLiteralTime(now time.Time, literal string) (time.Time, bool) {
	m := literalTimeRe.FindStringSubmatch(strings.TrimSpace(strings.ToLower(literal)))
	if m == nil {
		return time.Time{}, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	switch m[2] {
	case "second":
		return now.Add(time.Duration(n) * time.Second), true
	case "minute":
		return now.Add(time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "year":
		return now.AddDate(n, 0, 0), true
	}

	return time.Time{}, false
}

// IsLiteralTime 校验时长字面量语法
func IsLiteralTime(literal string) bool {
	return literalTimeRe.MatchString(strings.TrimSpace(strings.ToLower(literal)))
}

// RandomCode 生成 n 位数字验证码
func RandomCode(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		v, _ := rand.Int(rand.Reader, big.NewInt(10))
		fmt.Fprintf(&b, "%d", v.Int64())
	}
	return b.String()
}

var userNameRe = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

func IsValidUserName(name string) bool {
	return userNameRe.MatchString(name)
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// 标题敏感词
var restrictedWords = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "dick", "cunt",
}

// ContainsRestrictedWord 标题敏感词过滤
func ContainsRestrictedWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range restrictedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
