package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
	"github.com/noah-isme/roomfinder-api/pkg/response"
)

// Frontend serves the static single page app from dir for unmatched GET and
// HEAD requests. "/" resolves to index.html; missing files and directories
// without an index answer 404 in the API error format.
func Frontend(dir string) gin.HandlerFunc {
	root := http.Dir(dir)
	files := http.FileServer(root)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, appErrors.ErrNotFound)
			return
		}
		name := path.Clean("/" + c.Request.URL.Path)
		if !servable(root, name) {
			response.Error(c, appErrors.ErrNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

func servable(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck
	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	index, err := root.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	index.Close() //nolint:errcheck
	return true
}
