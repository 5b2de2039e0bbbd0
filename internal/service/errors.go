package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserEmailExist          = errors.New("邮箱已注册")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrPortfolioNotFound       = errors.New("作品集不存在")
	ErrPortfolioExist          = errors.New("每个用户只能创建一个作品集")
	ErrRatingNotFound          = errors.New("评分不存在")
	ErrRatingSelf              = errors.New("不能给自己的作品集评分")
	ErrStarsOutOfRange         = errors.New("评分星级必须在1到5之间")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserEmailExist:          BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrFileNotSupported:        BadRequest,
	ErrPortfolioNotFound:       NotFound,
	ErrPortfolioExist:          Conflict,
	ErrRatingNotFound:          NotFound,
	ErrRatingSelf:              Forbidden,
	ErrStarsOutOfRange:         BadRequest,
	UnauthorizedError:          Forbidden,
	UnExpectedError:            InternalServerError,
}
