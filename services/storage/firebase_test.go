package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplaintObjectPath(t *testing.T) {
	assert.Equal(t, "complaints/1700000000000_leak.jpg", ComplaintObjectPath("1700000000000_leak.jpg"))
	assert.Equal(t, "complaints/leak.jpg", ComplaintObjectPath("../../etc/leak.jpg"))
	assert.Equal(t, "complaints/leak.jpg", ComplaintObjectPath(`C:\Users\me\leak.jpg`))
	assert.Equal(t, "complaints/image", ComplaintObjectPath(""))
}

func TestDownloadURL(t *testing.T) {
	assert.Equal(t,
		"https://firebasestorage.googleapis.com/v0/b/demo.appspot.com/o/complaints%2F1_my%20photo.png?alt=media",
		DownloadURL("demo.appspot.com", "complaints/1_my photo.png"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/webp", detectContentType("a.png", "image/webp"))
	assert.Equal(t, "image/png", detectContentType("a.png", ""))
	assert.Equal(t, "application/octet-stream", detectContentType("noext", ""))
}
