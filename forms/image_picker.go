package forms

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/wiradarma21/travel_booking/api"
)

// MaxImages caps a package upload.
const MaxImages = 10

// PickedImage is one staged file: the submitted name plus a preview copy on
// disk. The preview lives until the image is removed or the picker closes.
type PickedImage struct {
	Name        string
	PreviewPath string
	Size        int64
}

// ImagePicker stages 1-10 image files for a multipart upload. Every file is
// content-sniffed; only real images get in. Selecting the same file twice is
// allowed.
type ImagePicker struct {
	tmpDir string
	images []PickedImage
	opened []*os.File
}

func NewImagePicker(tmpDir string) *ImagePicker {
	return &ImagePicker{tmpDir: tmpDir}
}

// Add stages one explicitly selected file. Non-images and overflow are
// errors so the form can surface them.
func (p *ImagePicker) Add(name string, content io.Reader) error {
	if !p.CanAddMore() {
		return fmt.Errorf("at most %d images are allowed", MaxImages)
	}

	image, err := p.stage(name, content)
	if err != nil {
		return err
	}
	p.images = append(p.images, *image)
	return nil
}

// AddDropped stages a batch from drag-and-drop: non-image files are skipped
// silently, and the count of staged files is returned.
func (p *ImagePicker) AddDropped(files map[string]io.Reader) int {
	added := 0
	for name, content := range files {
		if !p.CanAddMore() {
			break
		}
		image, err := p.stage(name, content)
		if err != nil {
			continue
		}
		p.images = append(p.images, *image)
		added++
	}
	return added
}

// stage copies the content into a preview file and sniffs its MIME type,
// deleting the copy again if it turns out not to be an image.
func (p *ImagePicker) stage(name string, content io.Reader) (*PickedImage, error) {
	previewPath := filepath.Join(p.tmpDir, uuid.NewString()+filepath.Ext(name))
	preview, err := os.Create(previewPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stage %s: %v", name, err)
	}

	size, err := io.Copy(preview, content)
	preview.Close()
	if err != nil {
		os.Remove(previewPath)
		return nil, fmt.Errorf("failed to stage %s: %v", name, err)
	}

	mtype, err := mimetype.DetectFile(previewPath)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		os.Remove(previewPath)
		return nil, fmt.Errorf("%s is not an image", name)
	}

	return &PickedImage{Name: name, PreviewPath: previewPath, Size: size}, nil
}

func (p *ImagePicker) Images() []PickedImage {
	return p.images
}

func (p *ImagePicker) Count() int {
	return len(p.images)
}

func (p *ImagePicker) CanAddMore() bool {
	return len(p.images) < MaxImages
}

// Remove discards one staged image and its preview file.
func (p *ImagePicker) Remove(index int) error {
	if index < 0 || index >= len(p.images) {
		return fmt.Errorf("no staged image at index %d", index)
	}
	os.Remove(p.images[index].PreviewPath)

	next := make([]PickedImage, 0, len(p.images)-1)
	next = append(next, p.images[:index]...)
	next = append(next, p.images[index+1:]...)
	p.images = next
	return nil
}

// Uploads opens every staged image for the multipart request. The picker
// keeps the handles and releases them in Close, so callers must read the
// uploads before closing.
func (p *ImagePicker) Uploads() ([]api.Upload, error) {
	uploads := make([]api.Upload, 0, len(p.images))
	for _, image := range p.images {
		f, err := os.Open(image.PreviewPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open staged image %s: %v", image.Name, err)
		}
		p.opened = append(p.opened, f)
		uploads = append(uploads, api.Upload{Filename: image.Name, Reader: f})
	}
	return uploads, nil
}

// Close releases every handed-out file handle and discards the staged images
// with their preview files.
func (p *ImagePicker) Close() {
	for _, f := range p.opened {
		f.Close()
	}
	p.opened = nil
	for _, image := range p.images {
		os.Remove(image.PreviewPath)
	}
	p.images = nil
}
