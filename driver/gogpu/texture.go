package gogpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imapp"
)

// Texture backend errors.
var (
	// ErrNoGPUContext is returned when a texture is created before the
	// first frame has bound a GPU context.
	ErrNoGPUContext = errors.New("gogpu: no GPU context bound yet")

	// ErrUnknownTexture is returned when updating a texture id this
	// backend did not create.
	ErrUnknownTexture = errors.New("gogpu: unknown texture id")
)

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// textureBackend implements imapp.TextureBackend over the gpucontext
// texture path. It maps imapp texture ids to the window's texture
// objects; the creator is re-bound every frame since it belongs to the
// frame's draw context.
//
// textureBackend is safe for concurrent use, though texture operations
// are expected to arrive from the render thread only.
type textureBackend struct {
	mu       sync.Mutex
	creator  gpucontext.TextureCreator
	textures map[imapp.TextureID]any
	nextID   atomic.Uint64
}

func newTextureBackend() *textureBackend {
	tb := &textureBackend{
		textures: make(map[imapp.TextureID]any),
	}
	// 0 is imapp.InvalidTextureID
	tb.nextID.Store(1)
	return tb
}

// bind installs the current frame's texture creator.
func (tb *textureBackend) bind(creator gpucontext.TextureCreator) {
	tb.mu.Lock()
	tb.creator = creator
	tb.mu.Unlock()
}

// CreateTexture allocates a GPU texture and uploads the initial pixels.
func (tb *textureBackend) CreateTexture(width, height int, rgba []byte) (imapp.TextureID, error) {
	tb.mu.Lock()
	creator := tb.creator
	tb.mu.Unlock()

	if creator == nil {
		return imapp.InvalidTextureID, ErrNoGPUContext
	}

	tex, err := creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return imapp.InvalidTextureID, fmt.Errorf("gogpu: NewTextureFromRGBA failed: %w", err)
	}

	id := imapp.TextureID(tb.nextID.Add(1) - 1)

	tb.mu.Lock()
	tb.textures[id] = tex
	tb.mu.Unlock()

	return id, nil
}

// WriteTexture replaces the full pixel contents of an existing texture.
func (tb *textureBackend) WriteTexture(id imapp.TextureID, rgba []byte) error {
	tb.mu.Lock()
	tex, ok := tb.textures[id]
	tb.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}

	updater, ok := tex.(gpucontext.TextureUpdater)
	if !ok {
		return fmt.Errorf("gogpu: texture %d does not support updates", id)
	}
	if err := updater.UpdateData(rgba); err != nil {
		return fmt.Errorf("gogpu: texture update failed: %w", err)
	}
	return nil
}

// DestroyTexture deallocates the texture. Unknown ids are a no-op.
func (tb *textureBackend) DestroyTexture(id imapp.TextureID) {
	tb.mu.Lock()
	tex, ok := tb.textures[id]
	if ok {
		delete(tb.textures, id)
	}
	tb.mu.Unlock()

	if !ok {
		return
	}
	if destroyer, ok := tex.(textureDestroyer); ok {
		destroyer.Destroy()
	}
}
