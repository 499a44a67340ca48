package codec

import "mime"

const (
	JSON_CTYPE = "application/json"

	//https://datatracker.ietf.org/doc/draft-ietf-httpapi-yaml-mediatypes/
	APP_YAML_CTYPE = "application/yaml"
)

var (
	formatsByMimeType = map[string]Format{
		JSON_CTYPE:     FORMAT_JSON,
		APP_YAML_CTYPE: FORMAT_YAML,
	}
)

func init() {
	mime.AddExtensionType(".json", JSON_CTYPE)
	mime.AddExtensionType(".yaml", APP_YAML_CTYPE)
	mime.AddExtensionType(".yml", APP_YAML_CTYPE)
}

// FormatByExtension returns the format of the files having the extension ext (e.g. ".yml").
func FormatByExtension(ext string) (Format, bool) {
	format, ok := formatsByMimeType[TypeByExtensionWithoutParams(ext)]
	return format, ok
}

// MimeType returns the mime type of a decodable format.
func MimeType(format Format) (string, bool) {
	for mimeType, f := range formatsByMimeType {
		if f == format {
			return mimeType, true
		}
	}
	return "", false
}

func TypeByExtensionWithoutParams(ext string) string {
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return ""
	}
	mimeType, _, _ = mime.ParseMediaType(mimeType)
	return mimeType
}
