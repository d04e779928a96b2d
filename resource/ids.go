package resource

// TextureID names a static image from the game data.
type TextureID int

const (
	TextureHusky TextureID = iota
	TextureDuck
	TextureHeart
	TextureBackground
	TextureGoal
	TextureSpike
)

func (id TextureID) String() string {
	switch id {
	case TextureHusky:
		return "husky"
	case TextureDuck:
		return "duck"
	case TextureHeart:
		return "heart"
	case TextureBackground:
		return "background"
	case TextureGoal:
		return "goal"
	case TextureSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// AnimationID names a sprite sheet animation from the game data.
type AnimationID int

const (
	AnimationHusky AnimationID = iota
	AnimationDuck
	AnimationGem
	AnimationCoin
	AnimationCatIdle
	AnimationCatWalking
)

func (id AnimationID) String() string {
	switch id {
	case AnimationHusky:
		return "husky"
	case AnimationDuck:
		return "duck"
	case AnimationGem:
		return "gem"
	case AnimationCoin:
		return "coin"
	case AnimationCatIdle:
		return "cat idle"
	case AnimationCatWalking:
		return "cat walking"
	default:
		return "unknown"
	}
}

// FontKind is one of the bundled typefaces.
type FontKind int

const (
	KenPixel FontKind = iota
	Joystix
)

// Path is relative to the media root.
func (k FontKind) Path() string {
	switch k {
	case Joystix:
		return "fonts/joystix.monospace.ttf"
	default:
		return "fonts/kenpixel_mini.ttf"
	}
}
