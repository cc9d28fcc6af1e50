package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"listing-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const schemasRoot = "requests"

// Версии схем запросов
const (
	PropertyRequest               = "PropertyRequest"
	AgencyRequest                 = "AgencyRequest"
	LocationRequest               = "LocationRequest"
	PropertyCategoryRequest       = "PropertyCategoryRequest"
	FaqRequest                    = "FaqRequest"
	NewsletterSubscriptionRequest = "NewsletterSubscriptionRequest"

	V1 = "1.0.0"
)

// ErrMalformedBody - тело запроса не является JSON
var ErrMalformedBody = errors.New("request body is not valid JSON")

var compiledSchemas map[string]*jsonschema.Schema

func init() {
	registry, err := compileSchemas(schemas.SchemasFS)
	if err != nil {
		// схемы встроены в бинарник, ошибка здесь - ошибка сборки
		panic(fmt.Sprintf("contracts: %v", err))
	}
	compiledSchemas = registry
}

func compileSchemas(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(fsys, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(path, bytes.NewReader(content)); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	registry := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path %s", path)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		registry[key] = schema
	}
	return registry, nil
}

// generateKeyFromPath: "requests/property-category/v1.json" -> "PropertyCategoryRequest/1.0.0"
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, schemasRoot+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Request")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return name.String() + "/" + version
}

// FieldError - одно нарушение схемы. Field - путь к полю через точку, пустой для корня.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors возвращается из ValidateRequest, когда тело не соответствует схеме
type FieldErrors struct {
	Errors []FieldError
}

func (e *FieldErrors) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		if fe.Field == "" {
			parts[i] = fe.Message
		} else {
			parts[i] = fe.Field + ": " + fe.Message
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateRequest проверяет тело по схеме name/version.
// Возвращает ErrMalformedBody, *FieldErrors или ошибку "схема не найдена".
func ValidateRequest(name, version string, body []byte) error {
	key := name + "/" + version
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for request '%s' version '%s' not found", name, version)
	}

	v, err := decodeBody(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &FieldErrors{Errors: collectFieldErrors(verr)}
		}
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// decodeBody разбирает JSON с json.Number, как ожидает jsonschema; данные после значения - ошибка
func decodeBody(body []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

var quotedName = regexp.MustCompile(`'([^']+)'`)

// collectFieldErrors разворачивает дерево ошибок в плоский список листьев
func collectFieldErrors(root *jsonschema.ValidationError) []FieldError {
	var result []FieldError

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}

		field := pointerToField(e.InstanceLocation)
		// required сообщает об ошибке на родителе, имена полей есть только в тексте
		if strings.HasSuffix(e.KeywordLocation, "/required") {
			for _, m := range quotedName.FindAllStringSubmatch(e.Message, -1) {
				result = append(result, FieldError{Field: joinField(field, m[1]), Message: "is required"})
			}
			return
		}
		result = append(result, FieldError{Field: field, Message: e.Message})
	}
	walk(root)

	sort.SliceStable(result, func(i, j int) bool { return result[i].Field < result[j].Field })
	return result
}

func pointerToField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	segments := strings.Split(pointer, "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return strings.Join(segments, ".")
}

func joinField(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
