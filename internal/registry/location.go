package registry

import "strings"

const fileScheme = "file"

// BuildLocation encodes the install directory root/dir the way the host
// serializes a file URI. root may be a Windows path (C:\x or c:/x) or a
// POSIX path; the drive letter is lower-cased in every form. UNC roots
// (\\server\share) are rejected by NewEntry.
//
//	path      /c:/Users/me/.ext/acme.tool-1.0.0
//	fsPath    c:\Users\me\.ext\acme.tool-1.0.0
//	external  file:///c%3A/Users/me/.ext/acme.tool-1.0.0
func BuildLocation(root, dir string, richness Richness) Location {
	drive := hasDriveLetter(root)
	windows := drive || strings.Contains(root, `\`)

	slashed := strings.TrimRight(strings.ReplaceAll(root, `\`, "/"), "/")
	if drive {
		slashed = strings.ToLower(slashed[:1]) + slashed[1:]
	}
	native := slashed + "/" + dir

	uriPath := native
	if !strings.HasPrefix(uriPath, "/") {
		uriPath = "/" + uriPath
	}

	loc := Location{
		Mid:    1,
		Path:   uriPath,
		Scheme: fileScheme,
	}
	if richness != Full {
		return loc
	}

	if windows {
		loc.FSPath = strings.ReplaceAll(native, "/", `\`)
		loc.Sep = 1
	} else {
		loc.FSPath = uriPath
	}
	loc.External = externalURI(uriPath, drive)
	return loc
}

// externalURI renders the file URI for an encoded path. Only the drive
// colon is escaped; every other character is left as it is in path.
func externalURI(uriPath string, drive bool) string {
	if drive {
		// "/c:/..." -> "/c%3A/..."
		uriPath = uriPath[:2] + "%3A" + uriPath[3:]
	}
	return fileScheme + "://" + uriPath
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isUNC reports whether root names a network share rather than a drive or
// a POSIX directory.
func isUNC(root string) bool {
	return strings.HasPrefix(root, `\\`) || strings.HasPrefix(root, "//")
}
