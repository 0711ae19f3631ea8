package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/ank17jaat/SpaceMate/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, root := range []string{"requests", "events"} {
		// Добавляем все схемы как ресурсы
		// Это нужно, чтобы схемы могли ссылаться друг на друга через `$ref`
		err := fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				file, _ := schemas.SchemasFS.Open(path)
				defer file.Close()
				if err := compiler.AddResource(path, file); err != nil {
					log.Fatalf("failed to add schema resource %s: %v", path, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}

		// Снова обходим для компиляции и регистрации
		err = fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				schema, err := compiler.Compile(path)
				if err != nil {
					log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
					return nil
				}

				key := generateKeyFromPath(path)
				compiledSchemas[key] = schema
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and compiling schemas: %v", err)
		}
	}
}

// generateKeyFromPath преобразует путь вида "events/booking-confirmed/v1.json"
// в ключ вида "BookingConfirmedEvent/1.0.0", а "requests/create-booking/v1.json"
// в "CreateBookingRequest/1.0.0".
func generateKeyFromPath(path string) string {
	suffix := ""
	switch {
	case strings.HasPrefix(path, "events/"):
		suffix = "Event"
		path = strings.TrimPrefix(path, "events/")
	case strings.HasPrefix(path, "requests/"):
		suffix = "Request"
		path = strings.TrimPrefix(path, "requests/")
	}
	trimmedPath := strings.TrimSuffix(path, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return "" // Некорректный путь, возвращаем пустой ключ
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	var nameBuilder strings.Builder
	for _, p := range nameParts {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString(suffix)

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// Validate принимает тело сообщения и имя контракта и проверяет по схеме
func Validate(contractType, contractVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", contractType, contractVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for contract '%s' version '%s' not found", contractType, contractVersion)
	}

	// Распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		// Возвращаем подробную ошибку валидации
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
