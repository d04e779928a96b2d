package resource

import (
	"fmt"
	"image"

	"github.com/automoto/husky-loves-ducky/gamedata"
)

// Manager is what asset mirrors load through. It speaks in game level names
// and leaves paths and caching to the backend.
type Manager interface {
	Texture(id TextureID) (Texture, error)
	Image(id TextureID, pos Position) (Image, error)
	Sheet(id AnimationID) (TileSheet, error)
	Sprite(id AnimationID, pos Position) (Sprite, error)
	Font(kind FontKind, size int) (Font, error)
}

// Helper resolves game data names into loader calls.
type Helper struct {
	Loader Loader
	Data   *gamedata.Game
}

var _ Manager = (*Helper)(nil)

func NewHelper(l Loader, data *gamedata.Game) *Helper {
	return &Helper{Loader: l, Data: data}
}

func (h *Helper) Texture(id TextureID) (Texture, error) {
	path, _, err := h.texture(id)
	if err != nil {
		return nil, err
	}
	return h.Loader.LoadTexture(spritePath(path))
}

func (h *Helper) Image(id TextureID, pos Position) (Image, error) {
	path, size, err := h.texture(id)
	if err != nil {
		return Image{}, err
	}
	t, err := h.Loader.LoadTexture(spritePath(path))
	if err != nil {
		return Image{}, err
	}
	return Image{Texture: t, Pos: pos, Size: size}, nil
}

func (h *Helper) Sheet(id AnimationID) (TileSheet, error) {
	s, _, err := h.animation(id)
	if err != nil {
		return TileSheet{}, err
	}
	t, err := h.Loader.LoadTexture(spritePath(s.Texture))
	if err != nil {
		return TileSheet{}, err
	}
	return TileSheet{Texture: t, Tiles: s.Tiles.Point()}, nil
}

func (h *Helper) Sprite(id AnimationID, pos Position) (Sprite, error) {
	_, size, err := h.animation(id)
	if err != nil {
		return Sprite{}, err
	}
	sheet, err := h.Sheet(id)
	if err != nil {
		return Sprite{}, err
	}
	return Sprite{Sheet: sheet, Pos: pos, Size: size}, nil
}

func (h *Helper) Font(kind FontKind, size int) (Font, error) {
	return h.Loader.LoadFont(kind.Path(), size)
}

func (h *Helper) texture(id TextureID) (string, image.Point, error) {
	d := h.Data
	switch id {
	case TextureHusky:
		return d.Husky.IdleTexture, d.Husky.OutSize.Point(), nil
	case TextureDuck:
		return d.Duck.IdleTexture, d.Duck.OutSize.Point(), nil
	case TextureHeart:
		return d.Heart.Texture, d.Heart.OutSize.Point(), nil
	case TextureBackground:
		return d.Background.Texture, d.Background.OutSize.Point(), nil
	case TextureGoal:
		return d.Goal.Texture, d.Goal.OutSize.Point(), nil
	case TextureSpike:
		return d.Spike.Texture, d.Spike.OutSize.Point(), nil
	default:
		return "", image.Point{}, fmt.Errorf("unknown texture id %d", id)
	}
}

func (h *Helper) animation(id AnimationID) (gamedata.Sprite, image.Point, error) {
	d := h.Data
	switch id {
	case AnimationHusky:
		return d.Husky.Animation, d.Husky.OutSize.Point(), nil
	case AnimationDuck:
		return d.Duck.Animation, d.Duck.OutSize.Point(), nil
	case AnimationGem:
		return d.Gem.Animation, d.Gem.OutSize.Point(), nil
	case AnimationCoin:
		return d.Coin.Animation, d.Coin.OutSize.Point(), nil
	case AnimationCatIdle:
		return d.Cat.Idle, d.Cat.OutSize.Point(), nil
	case AnimationCatWalking:
		return d.Cat.Walking, d.Cat.OutSize.Point(), nil
	default:
		return gamedata.Sprite{}, image.Point{}, fmt.Errorf("unknown animation id %d", id)
	}
}

func spritePath(name string) string {
	return "sprites/" + name
}
