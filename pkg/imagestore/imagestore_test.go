package imagestore

import (
	"testing"

	"BlogGolang/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestNew_UnknownProvider(t *testing.T) {
	store, err := New(Config{Provider: "ftp"}, log.NewDiscardLogger())
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_CloudinaryRequiresCredentials(t *testing.T) {
	_, err := New(Config{Provider: ProviderCloudinary}, log.NewDiscardLogger())
	assert.Error(t, err)
}

func TestNew_S3RequiresBucket(t *testing.T) {
	_, err := New(Config{Provider: ProviderS3}, log.NewDiscardLogger())
	assert.Error(t, err)
}
