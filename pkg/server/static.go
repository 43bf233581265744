package server

import (
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// CacheControl selects the Cache-Control policy for static files.
type CacheControl int

const (
	// CacheNone sets no Cache-Control header.
	CacheNone CacheControl = iota

	// CacheDisabled forbids caching, for development.
	CacheDisabled

	// CacheProduction caches fingerprinted files for a year and everything
	// else for an hour.
	CacheProduction
)

// Static serves the files of fsys below prefix, for example "/static/".
// Directories are not listed.
func (s *Server) Static(prefix string, fsys fs.FS, cache CacheControl) {
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	h := &staticHandler{prefix: prefix, fsys: fsys, cache: cache}
	s.router.Get(prefix+"*", h.ServeHTTP)
	s.router.Head(prefix+"*", h.ServeHTTP)
}

type staticHandler struct {
	prefix string
	fsys   fs.FS
	cache  CacheControl
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel, ok := staticRelPath(strings.TrimPrefix(r.URL.Path, h.prefix))
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := h.fsys.Open(rel)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	switch h.cache {
	case CacheDisabled:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case CacheProduction:
		if isFingerprinted(rel) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
		}
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, rel, info.ModTime(), rs)
}

// staticRelPath validates a path relative to the static root. It rejects
// traversal, absolute paths and backslashes instead of cleaning them away.
func staticRelPath(rel string) (string, bool) {
	if rel == "" || strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") || strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}
	clean := path.Clean(rel)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}

// isFingerprinted reports whether the file name carries a content hash,
// as in "app.a1b2c3d4.css".
func isFingerprinted(name string) bool {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
