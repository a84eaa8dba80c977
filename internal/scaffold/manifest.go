package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"path"
	"strings"

	"github.com/tailscale/hujson"
)

// ManifestName is the base name of files rewritten as structured manifests.
const ManifestName = "package.json"

// dependencyFields hold workspace references to sibling packages whose keys
// carry the package scope.
var dependencyFields = map[string]bool{
	"dependencies":         true,
	"devDependencies":      true,
	"peerDependencies":     true,
	"optionalDependencies": true,
}

var errNotObject = errors.New("manifest is not a JSON object")

// IsManifest reports whether the file at rel is rewritten as a manifest.
func IsManifest(rel string) bool {
	return path.Base(rel) == ManifestName
}

// CheckManifest reports whether data parses as a manifest object.
func CheckManifest(data []byte) error {
	v, err := hujson.Parse(data)
	if err != nil {
		return err
	}
	if _, ok := v.Value.(*hujson.Object); !ok {
		return errNotObject
	}
	return nil
}

// RewriteManifest sets the identity fields of the manifest at rel.
//
// The root manifest's "name" becomes name exactly (it is added when
// missing). In nested manifests the scope of "name" and of dependency keys is
// moved from p's scope to name. No other value is touched. The result is
// re-indented with two spaces and a trailing newline with keys in their
// original order, so rewriting its own output returns identical bytes.
func RewriteManifest(data []byte, rel, name string, p Placeholders) ([]byte, error) {
	out, _, err := rewriteManifest(data, rel, name, p)
	return out, err
}

// rewriteManifest is RewriteManifest that also reports whether an identity
// field changed, as opposed to the manifest only being re-indented.
func rewriteManifest(data []byte, rel, name string, p Placeholders) (out []byte, renamed bool, err error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, false, err
	}
	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		return nil, false, errNotObject
	}

	root := path.Clean(rel) == ManifestName
	named := false

	for i := range obj.Members {
		m := &obj.Members[i]
		key, ok := stringLiteral(m.Name)
		if !ok {
			continue
		}

		switch {
		case key == "name":
			named = true
			old, isString := stringLiteral(m.Value)
			switch {
			case root:
				renamed = renamed || !isString || old != name
				m.Value.Value = hujson.String(name)
			case isString:
				s := rescope(old, p, name)
				renamed = renamed || s != old
				m.Value.Value = hujson.String(s)
			}
		case dependencyFields[key]:
			deps, ok := m.Value.Value.(*hujson.Object)
			if !ok {
				continue
			}
			for j := range deps.Members {
				dep := &deps.Members[j]
				if k, ok := stringLiteral(dep.Name); ok {
					s := rescope(k, p, name)
					renamed = renamed || s != k
					dep.Name.Value = hujson.String(s)
				}
			}
		}
	}

	if root && !named {
		renamed = true
		obj.Members = append(obj.Members, hujson.ObjectMember{
			Name:  hujson.Value{Value: hujson.String("name")},
			Value: hujson.Value{Value: hujson.String(name)},
		})
	}

	v.Standardize()

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(v.Pack()), "", "  "); err != nil {
		return nil, false, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), renamed, nil
}

func stringLiteral(v hujson.Value) (string, bool) {
	lit, ok := v.Value.(hujson.Literal)
	if !ok || len(lit) == 0 || lit[0] != '"' {
		return "", false
	}
	return lit.String(), true
}

func rescope(s string, p Placeholders, name string) string {
	prefix := p.ScopePrefix()
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return s
	}
	return "@" + name + "/" + strings.TrimPrefix(s, prefix)
}
