package resources

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/VanillaBrooks/markdown-pdf/core"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	pictureResourceType
)

// ErrRemote is returned for pictures referenced by URL. They are never fetched.
var ErrRemote = errors.New("remote picture not fetched")

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	switch rtype {
	case pictureResourceType:
		return core.WrapError(e, core.EMISSING, "picture not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "resource not found: %s", res)
}

// --- Pictures -------------------------------------------------------------

// PictureInfo describes a picture file without holding its pixels.
type PictureInfo struct {
	Path   string // path as found on disk
	Format string // format name as registered with package image
	Width  int    // in pixels
	Height int    // in pixels
}

// Portrait is true for pictures higher than wide.
func (pi PictureInfo) Portrait() bool {
	return pi.Height > pi.Width
}

type infoPlusErr struct {
	info PictureInfo
	err  error
}

// PicturePromise is returned by ResolvePicture. Calling Picture or Await
// blocks until the picture has been inspected.
type PicturePromise interface {
	Picture() (PictureInfo, error)
	Await(ctx context.Context) (PictureInfo, error)
}

type pictureLoader struct {
	await func(ctx context.Context) (PictureInfo, error)
}

func (loader pictureLoader) Picture() (PictureInfo, error) {
	return loader.await(context.Background())
}

func (loader pictureLoader) Await(ctx context.Context) (PictureInfo, error) {
	return loader.await(ctx)
}

// ResolvePicture locates a picture referenced from a markdown file and
// reads its dimensions. Relative paths are resolved against base, which is
// usually the directory of the markdown source. Links are not fetched.
func ResolvePicture(base, path string) PicturePromise {
	ch := make(chan infoPlusErr, 1)
	go func(ch chan<- infoPlusErr) {
		defer close(ch)
		ch <- inspectPicture(base, path)
	}(ch)
	return pictureLoader{
		await: func(ctx context.Context) (PictureInfo, error) {
			select {
			case <-ctx.Done():
				return PictureInfo{Path: path}, ctx.Err()
			case r := <-ch:
				return r.info, r.err
			}
		},
	}
}

func inspectPicture(base, path string) (result infoPlusErr) {
	result.info.Path = path
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		result.err = core.WrapError(ErrRemote, core.EINVALID, "picture %s is a link", path)
		return
	}
	if !filepath.IsAbs(path) && base != "" {
		result.info.Path = filepath.Join(base, path)
	}
	tracer().Debugf("inspecting picture %s", result.info.Path)
	file, err := os.Open(result.info.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.err = NotFound(path, pictureResourceType)
		} else {
			result.err = core.WrapError(err, core.EIO, "cannot open picture %s", path)
		}
		return
	}
	defer file.Close()
	conf, format, err := image.DecodeConfig(file)
	if err != nil {
		result.err = core.WrapError(err, core.EINVALID, "cannot decode picture %s", path)
		return
	}
	result.info.Format = format
	result.info.Width, result.info.Height = conf.Width, conf.Height
	tracer().Debugf("picture %s is %s, %dx%d", path, format, conf.Width, conf.Height)
	return
}

// ResolvePictures inspects a set of pictures concurrently. Results are
// in the order of paths. Inspection stops early if ctx is cancelled.
func ResolvePictures(ctx context.Context, base string, paths []string) ([]PictureInfo, []error) {
	promises := make([]PicturePromise, len(paths))
	for i, p := range paths {
		promises[i] = ResolvePicture(base, p)
	}
	infos := make([]PictureInfo, len(paths))
	errs := make([]error, len(paths))
	for i, promise := range promises {
		infos[i], errs[i] = promise.Await(ctx)
	}
	return infos, errs
}
