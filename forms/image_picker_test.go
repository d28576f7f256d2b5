package forms

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"
)

// pngBytes is a minimal valid PNG header, enough for content sniffing.
func pngBytes() []byte {
	return []byte("\x89PNG\r\n\x1a\n" + "0000IHDR")
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4 fake document")
}

func TestAddRejectsNonImage(t *testing.T) {
	picker := NewImagePicker(t.TempDir())
	defer picker.Close()

	if err := picker.Add("doc.pdf", bytes.NewReader(pdfBytes())); err == nil {
		t.Fatal("a PDF must not be staged as an image")
	}
	if picker.Count() != 0 {
		t.Errorf("rejected file must not be counted, got %d", picker.Count())
	}

	if err := picker.Add("photo.png", bytes.NewReader(pngBytes())); err != nil {
		t.Fatalf("Add failed on a real image: %v", err)
	}
	if picker.Count() != 1 {
		t.Errorf("expected 1 staged image, got %d", picker.Count())
	}
}

func TestAddDroppedSkipsNonImagesSilently(t *testing.T) {
	picker := NewImagePicker(t.TempDir())
	defer picker.Close()

	added := picker.AddDropped(map[string]io.Reader{
		"a.png":   bytes.NewReader(pngBytes()),
		"b.png":   bytes.NewReader(pngBytes()),
		"doc.pdf": bytes.NewReader(pdfBytes()),
	})

	if added != 2 {
		t.Errorf("expected 2 staged files from the drop, got %d", added)
	}
	if picker.Count() != 2 {
		t.Errorf("expected 2 staged images, got %d", picker.Count())
	}
}

func TestImageCap(t *testing.T) {
	picker := NewImagePicker(t.TempDir())
	defer picker.Close()

	for i := 0; i < MaxImages; i++ {
		name := fmt.Sprintf("img-%d.png", i)
		if err := picker.Add(name, bytes.NewReader(pngBytes())); err != nil {
			t.Fatalf("Add %s failed: %v", name, err)
		}
	}
	if picker.CanAddMore() {
		t.Error("picker should be full at the cap")
	}
	if err := picker.Add("overflow.png", bytes.NewReader(pngBytes())); err == nil {
		t.Error("adding past the cap must fail")
	}

	if err := picker.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !picker.CanAddMore() {
		t.Error("removing one image should free a slot")
	}
}

func TestRemoveDeletesPreviewFile(t *testing.T) {
	picker := NewImagePicker(t.TempDir())
	defer picker.Close()

	if err := picker.Add("photo.png", bytes.NewReader(pngBytes())); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	preview := picker.Images()[0].PreviewPath
	if _, err := os.Stat(preview); err != nil {
		t.Fatalf("preview file should exist while staged: %v", err)
	}

	if err := picker.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(preview); !os.IsNotExist(err) {
		t.Error("preview file should be gone after Remove")
	}
	if err := picker.Remove(0); err == nil {
		t.Error("removing from an empty picker must fail")
	}
}

func TestUploadsAndClose(t *testing.T) {
	picker := NewImagePicker(t.TempDir())

	if err := picker.Add("photo.png", bytes.NewReader(pngBytes())); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	preview := picker.Images()[0].PreviewPath

	uploads, err := picker.Uploads()
	if err != nil {
		t.Fatalf("Uploads failed: %v", err)
	}
	if len(uploads) != 1 || uploads[0].Filename != "photo.png" {
		t.Fatalf("unexpected uploads %+v", uploads)
	}
	content, err := io.ReadAll(uploads[0].Reader)
	if err != nil {
		t.Fatalf("failed to read upload: %v", err)
	}
	if !bytes.Equal(content, pngBytes()) {
		t.Error("upload content should match the staged file")
	}

	picker.Close()
	if picker.Count() != 0 {
		t.Error("Close should discard all staged images")
	}
	if _, err := os.Stat(preview); !os.IsNotExist(err) {
		t.Error("Close should delete preview files")
	}
}

func TestCloseReleasesUploadHandles(t *testing.T) {
	picker := NewImagePicker(t.TempDir())

	for i := 0; i < MaxImages; i++ {
		name := fmt.Sprintf("img-%d.png", i)
		if err := picker.Add(name, bytes.NewReader(pngBytes())); err != nil {
			t.Fatalf("Add %s failed: %v", name, err)
		}
	}

	uploads, err := picker.Uploads()
	if err != nil {
		t.Fatalf("Uploads failed: %v", err)
	}
	for _, upload := range uploads {
		if _, err := io.ReadAll(upload.Reader); err != nil {
			t.Fatalf("failed to read upload %s: %v", upload.Filename, err)
		}
	}

	picker.Close()
	buf := make([]byte, 1)
	for _, upload := range uploads {
		if _, err := upload.Reader.Read(buf); err == nil {
			t.Fatalf("upload %s should be closed after Close", upload.Filename)
		}
	}
}
