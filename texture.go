package imapp

import (
	"errors"
	"fmt"
	"sync"
)

// Texture errors.
var (
	// ErrNoTextureBackend is returned by Upload when no texture backend is
	// registered. The window driver registers one when the window opens;
	// tests register fakes via SetTextureBackend.
	ErrNoTextureBackend = errors.New("imapp: no texture backend registered")

	// ErrTextureCreate is returned when the backend fails to allocate a
	// texture object.
	ErrTextureCreate = errors.New("imapp: texture creation failed")
)

// TextureID is an opaque identifier naming a GPU-resident copy of an
// Image's pixel buffer. The zero value is never a valid texture.
type TextureID uint64

// InvalidTextureID is the zero TextureID. Backends must never return it
// for a successfully created texture.
const InvalidTextureID TextureID = 0

// TextureBackend is the graphics-backend boundary used by Image uploads.
//
// Implementations are provided by window driver packages (driver/gogpu
// adapts the gpucontext texture path) or by test doubles. All methods must
// be called from the thread that owns the graphics context.
type TextureBackend interface {
	// CreateTexture allocates a width x height RGBA texture, uploads the
	// initial pixel data, and returns its identifier. The backend applies
	// linear min/mag filtering.
	CreateTexture(width, height int, rgba []byte) (TextureID, error)

	// WriteTexture replaces the full pixel contents of an existing
	// texture. There is no partial or sub-region update.
	WriteTexture(id TextureID, rgba []byte) error

	// DestroyTexture deallocates the texture. Destroying an unknown id
	// is a no-op.
	DestroyTexture(id TextureID)
}

// backendMu guards the process-wide texture backend. One window owns the
// graphics context for the process lifetime, so a single active backend
// matches the ownership model.
var (
	backendMu  sync.RWMutex
	texBackend TextureBackend
)

// SetTextureBackend installs the process-wide texture backend used by
// Image.Upload. Pass nil to clear it (textures can no longer be created;
// already-bound textures still release through the backend that made them).
func SetTextureBackend(b TextureBackend) {
	backendMu.Lock()
	texBackend = b
	backendMu.Unlock()
}

// ActiveTextureBackend returns the currently installed texture backend,
// or nil if none is registered.
func ActiveTextureBackend() TextureBackend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return texBackend
}

// boundTexture pairs a texture id with the backend that created it, so a
// release always goes to the right backend even if the active backend
// changes, and the dimensions the texture was allocated with. A nil
// *boundTexture on Image means "not on GPU".
type boundTexture struct {
	id      TextureID
	backend TextureBackend
	width   int
	height  int
}

// Upload sends the image to the GPU. The first call allocates a texture
// object and uploads the full pixel buffer; every subsequent call
// re-uploads the full buffer into the existing texture, leaving the
// texture id unchanged. Safe to call every frame for mutating content at
// the cost of a full-buffer transfer each time.
//
// If the image dimensions have changed since the texture was created
// (Resize or Rescale), the old texture is destroyed and a new one
// allocated, so the texture id changes across a dimension change.
//
// Upload returns ErrNoTextureBackend when no backend is registered, which
// happens before the window has opened.
func (im *Image) Upload() error {
	// WriteTexture carries no dimensions, so a resized buffer needs a
	// fresh texture object.
	if im.tex != nil && (im.tex.width != im.width || im.tex.height != im.height) {
		im.tex.backend.DestroyTexture(im.tex.id)
		im.tex = nil
	}

	if im.tex != nil {
		if err := im.tex.backend.WriteTexture(im.tex.id, im.rgba()); err != nil {
			return fmt.Errorf("imapp: texture update failed: %w", err)
		}
		return nil
	}

	backend := ActiveTextureBackend()
	if backend == nil {
		return ErrNoTextureBackend
	}
	id, err := backend.CreateTexture(im.width, im.height, im.rgba())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTextureCreate, err)
	}
	im.tex = &boundTexture{id: id, backend: backend, width: im.width, height: im.height}
	Logger().Debug("uploaded image to GPU", "texture", uint64(id), "width", im.width, "height", im.height)
	return nil
}

// Release removes the image from the GPU and clears the texture
// association. Release is idempotent: calling it on an image that was
// never uploaded, or releasing twice, is a no-op.
func (im *Image) Release() {
	if im.tex == nil {
		return
	}
	im.tex.backend.DestroyTexture(im.tex.id)
	im.tex = nil
}

// Close releases the GPU texture, if any. It implements io.Closer so the
// usual defer pattern guarantees teardown on every exit path:
//
//	img := imapp.NewImage(256, 256)
//	defer img.Close()
func (im *Image) Close() error {
	im.Release()
	return nil
}

// OnGPU reports whether the image currently has a GPU-resident texture.
// It does not mean the GPU copy is up to date with the pixel buffer.
func (im *Image) OnGPU() bool {
	return im.tex != nil
}

// Texture returns the GPU texture id and whether one is present.
func (im *Image) Texture() (TextureID, bool) {
	if im.tex == nil {
		return InvalidTextureID, false
	}
	return im.tex.id, true
}
