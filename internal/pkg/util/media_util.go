package util

import (
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 通过嗅探文件头判断真实类型，不信任客户端声明
func GetSafeContentType(seeker io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := seeker.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}

// GetImageDimensions 解码图片获取宽高
func GetImageDimensions(seeker io.ReadSeeker) (int, int, error) {
	img, err := imaging.Decode(seeker)
	if err != nil {
		return 0, 0, fmt.Errorf("图片解码失败: %w", err)
	}

	if _, err = seeker.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
