package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SanitizeFilename 将客户端上传的文件名清洗为文件系统安全的形式：
// 去掉路径部分，非法字符替换为下划线，连续分隔符折叠。
// 清洗后为空时返回 "unnamed"。
func SanitizeFilename(name string) string {
	// 去掉路径，防止目录穿越
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	b.Grow(len(name))
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}

// UniqueObjectName 生成带随机前缀的存储对象名，避免同名上传互相覆盖。
// 格式：<uuid>_<清洗后的原始文件名>
func UniqueObjectName(originalName string) string {
	return uuid.NewString() + "_" + SanitizeFilename(originalName)
}

// FileExtension 返回文件名的小写扩展名（不带点），没有扩展名时返回空串
func FileExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
