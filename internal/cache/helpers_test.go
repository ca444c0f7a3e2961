package cache

import (
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
)

func newRestored(url string, createdAt time.Time, accessCount int64) *model.Entry {
	e := model.NewEntry(url, []byte("img"), createdAt)
	e.SetAccessCount(accessCount)
	return e
}
