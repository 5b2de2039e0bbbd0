package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var slugInvalidRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将展示名转为 URL 安全的标识
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "portfolio"
	}
	return slug
}

// GenerateSlug 生成带时间戳后缀的唯一 slug
func GenerateSlug(name string) string {
	return Slugify(name) + "-" + strconv.FormatInt(time.Now().Unix(), 10)
}

// GetMidnight 获取指定时间当日零点
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
