package qtdoc

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Canonical corpus location. Every served URL lives under this host and
// path prefix.
const (
	CanonicalHost = "doc.qt.io"
	ArchivePrefix = "/archives/qt-4.8/"

	// CanonicalBase is the URL prefix for every page in the corpus.
	CanonicalBase = "https://" + CanonicalHost + ArchivePrefix
)

// Resolver validates and normalizes documentation URLs and maps them to
// files under the local corpus root. All cache and index keys derive from
// its canonical form, never from raw input URLs.
type Resolver struct {
	host   string
	prefix string
}

// NewResolver returns a Resolver for the Qt 4.8 archive.
func NewResolver() *Resolver {
	return &Resolver{host: CanonicalHost, prefix: ArchivePrefix}
}

// Canonicalize validates raw and returns its canonical form. Logically
// equivalent inputs (duplicate slashes, in-bounds ".." segments) canonicalize
// to byte-identical strings. Query and fragment are preserved verbatim.
//
// Returns EINVALID for malformed URLs or a disallowed scheme/host, and
// ENOTALLOWED when the path lies outside the archive prefix.
func (r *Resolver) Canonicalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL: %v", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EINVALID, "URL scheme %q not allowed", u.Scheme)
	}
	if strings.ToLower(u.Host) != r.host {
		return "", Errorf(EINVALID, "URL host %q not allowed", u.Host)
	}
	if !strings.HasPrefix(u.Path, r.prefix) {
		return "", Errorf(ENOTALLOWED, "URL not under the Qt 4.8 archive path")
	}

	// Collapse ".", ".." and duplicate separators, then re-check the
	// boundary: a path may start under the prefix and still climb out.
	cleaned := path.Clean(u.Path)
	if cleaned != strings.TrimSuffix(r.prefix, "/") && !strings.HasPrefix(cleaned, r.prefix) {
		return "", Errorf(ENOTALLOWED, "normalized path escaped the archive prefix")
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(r.host)
	b.WriteString(cleaned)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.Fragment)
	}
	return b.String(), nil
}

// Resolve maps a canonical URL to a file path under docBase. It is an
// independent boundary check: even a URL that passed Canonicalize is
// re-validated against escapes, including symlinks under docBase.
func (r *Resolver) Resolve(canonical, docBase string) (string, error) {
	u, err := url.Parse(canonical)
	if err != nil {
		return "", Errorf(EINVALID, "invalid canonical URL: %v", err)
	}

	// Canonicalize collapses the archive root to the bare prefix without a
	// trailing slash; it maps to the corpus root directory.
	bare := strings.TrimSuffix(r.prefix, "/")
	if u.Path != bare && !strings.HasPrefix(u.Path, r.prefix) {
		return "", Errorf(ENOTALLOWED, "URL not under the Qt 4.8 archive path")
	}

	rel := strings.TrimPrefix(u.Path, bare)
	rel = strings.TrimPrefix(rel, "/")

	// Canonicalize already normalized the path; a ".." that survived to
	// this point is an escape attempt, not noise.
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", Errorf(ENOTALLOWED, "path escapes the documentation root")
		}
	}
	safe := strings.TrimPrefix(path.Clean("/"+rel), "/")

	base := filepath.Clean(docBase)
	full := filepath.Join(base, filepath.FromSlash(safe))
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", Errorf(ENOTALLOWED, "path escapes the documentation root")
	}

	// A symlink inside the corpus must not point outside it. EvalSymlinks
	// fails for paths that do not exist yet; existence is checked later by
	// the reader, so only verify links we can actually follow.
	if resolved, err := filepath.EvalSymlinks(full); err == nil {
		baseResolved, berr := filepath.EvalSymlinks(base)
		if berr == nil && resolved != baseResolved &&
			!strings.HasPrefix(resolved, baseResolved+string(filepath.Separator)) {
			return "", Errorf(ENOTALLOWED, "path escapes the documentation root")
		}
	}

	return full, nil
}
