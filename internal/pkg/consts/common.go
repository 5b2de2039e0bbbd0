package consts

const (
	MimePrefixImage = "image"
)

const (
	PortfolioStatusPublished = 1
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// 评分取值范围
const (
	MinStars = 1
	MaxStars = 5
)
