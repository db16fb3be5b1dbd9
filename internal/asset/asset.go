package asset

import (
	"strings"

	"github.com/google/uuid"
)

// Extensions 允许的图片扩展名
var Extensions = map[string]bool{
	"png":  true,
	"gif":  true,
	"jpg":  true,
	"jpeg": true,
}

// Path 是校验通过的上传资源相对路径：{group}/{subject}/{uuid}.{ext}
type Path struct {
	Group   string
	Subject string
	Stem    string
	Ext     string
}

// String 返回可直接拼接在资源基础 URL 之后的路径
func (p Path) String() string {
	return p.Group + "/" + p.Subject + "/" + p.Stem + "." + p.Ext
}

// Parse 校验路径，失败时返回 false
//
// 调用方负责先去掉首尾空白。
func Parse(s string) (Path, bool) {
	segments := strings.Split(s, "/")
	if len(segments) != 3 {
		return Path{}, false
	}
	group, subject, file := segments[0], segments[1], segments[2]
	if !isGroup(group) || !isDigits(subject) {
		return Path{}, false
	}

	dot := strings.LastIndexByte(file, '.')
	if dot < 0 {
		return Path{}, false
	}
	stem, ext := file[:dot], file[dot+1:]
	if !Extensions[strings.ToLower(ext)] {
		return Path{}, false
	}
	if !isUUID(stem) {
		return Path{}, false
	}

	return Path{Group: group, Subject: subject, Stem: stem, Ext: ext}, true
}

// Valid 报告 s 是否为合法资源路径
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// isUUID 只接受 8-4-4-4-12 的标准形式
//
// uuid.Parse 也接受 urn:uuid:、花括号和无连字符写法，先用长度排除。
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isDigits 检查字符串是否全为 ASCII 数字
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isGroup(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return len(s) > 0
}
