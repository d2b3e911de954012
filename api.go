package typeson

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/argonlab/typeson/document"
	"github.com/argonlab/typeson/internal/mapper"
	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
	"github.com/argonlab/typeson/stream"
)

// SaveObjectToStream serializes obj into the envelope format and writes the
// pretty-printed document to st. When defaultObj is non-nil, fields equal to
// the default's are omitted from the payload.
func SaveObjectToStream(obj any, id model.TypeID, st stream.GenericStream, defaultObj any, settings *SerializerSettings) error {
	if !st.CanWrite() {
		return ErrStreamNotWritable
	}

	var s SerializerSettings
	if settings != nil {
		s = *settings
	}
	if s.Registry == nil {
		return fmt.Errorf("%w for saving", ErrRegistryRequired)
	}

	desc := s.Registry.FindTypeByID(id)
	if desc == nil {
		return fmt.Errorf("type id %s is not registered", id)
	}

	payload, rc := mapper.Store(obj, defaultObj, id, mapper.Settings{Registry: s.Registry, Reporting: s.Reporting})
	if rc.Processing() != result.Completed {
		return fmt.Errorf("%s", rc.Render(""))
	}

	if err := document.Write(st, buildEnvelope(desc.Name, payload)); err != nil {
		return fmt.Errorf("unable to write class %s with the JSON serialization format: %w", id, err)
	}
	return nil
}

// SaveObjectToFile serializes obj to an in-memory buffer first and only opens
// the destination once serialization succeeded, so a failed save never
// truncates an existing file. Missing parent directories are created.
func SaveObjectToFile(obj any, id model.TypeID, path string, defaultObj any, settings *SerializerSettings) error {
	buffer := stream.NewByteStream(nil)
	if err := SaveObjectToStream(obj, id, buffer, defaultObj, settings); err != nil {
		return err
	}

	out, err := stream.OpenFile(path, stream.ModeWrite|stream.ModeCreatePath)
	if err != nil {
		return fmt.Errorf("error opening file %q for writing: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("error writing file %q: %w", path, err)
	}
	return nil
}

// LoadJSONFromStream reads the whole stream, capped at MaxDocumentSize, and
// parses it into a document tree.
func LoadJSONFromStream(st stream.GenericStream) (*document.Value, error) {
	length := st.Length()
	if length > MaxDocumentSize {
		return nil, fmt.Errorf("stream reports %d bytes: %w", length, ErrDataTooLarge)
	}

	buffer := make([]byte, length)
	if _, err := io.ReadFull(st, buffer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadIncomplete, err)
	}

	return document.Parse(buffer)
}

// LoadJSONFromFile opens path read-only and parses its contents. Files with a
// .yaml or .yml extension go through the YAML front-end; everything else is
// parsed as JSON.
func LoadJSONFromFile(path string) (*document.Value, error) {
	in, err := stream.OpenFile(path, stream.ModeRead)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer in.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		length := in.Length()
		if length > MaxDocumentSize {
			return nil, fmt.Errorf("stream reports %d bytes: %w", length, ErrDataTooLarge)
		}
		buffer := make([]byte, length)
		if _, err := io.ReadFull(in, buffer); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadIncomplete, err)
		}
		doc, err := document.ParseYAML(buffer)
		if err != nil {
			return nil, fmt.Errorf("failed to load %q: %w", path, err)
		}
		return doc, nil
	default:
		doc, err := LoadJSONFromStream(in)
		if err != nil {
			return nil, fmt.Errorf("failed to load %q: %w", path, err)
		}
		return doc, nil
	}
}

// LoadObjectFromStream parses st, validates the envelope, checks the declared
// class name against the requested type, and populates target. The load
// succeeds only when the mapping outcome is a success category and no
// diagnostics accumulated.
func LoadObjectFromStream(target any, id model.TypeID, st stream.GenericStream, settings *DeserializerSettings) error {
	loadSettings, diagnostics, err := prepareDeserializerSettings(settings)
	if err != nil {
		return err
	}

	doc, err := LoadJSONFromStream(st)
	if err != nil {
		return err
	}
	if err := ValidateHeader(doc); err != nil {
		return err
	}

	desc := loadSettings.Registry.FindTypeByID(id)
	if desc == nil {
		return fmt.Errorf("type id %s is not registered", id)
	}
	className := envelopeClassName(doc)
	if !strings.EqualFold(desc.Name, className) {
		return fmt.Errorf("cannot load class %s from class %s data", desc.Name, className)
	}

	rc := mapper.Load(target, id, envelopeClassData(doc), loadSettings)
	return loadOutcome(rc, diagnostics)
}

// LoadObjectFromFile is LoadObjectFromStream over a read-only file stream.
func LoadObjectFromFile(target any, id model.TypeID, path string, settings *DeserializerSettings) error {
	in, err := stream.OpenFile(path, stream.ModeRead)
	if err != nil {
		return fmt.Errorf("error opening file %q for reading: %w", path, err)
	}
	defer in.Close()
	return LoadObjectFromStream(target, id, in, settings)
}

// LoadAnyObjectFromStream resolves the target type purely from the envelope's
// ClassName, constructs a default instance through the registry and populates
// it. When the name resolves to several ids the first registered one wins.
func LoadAnyObjectFromStream(st stream.GenericStream, settings *DeserializerSettings) (any, error) {
	loadSettings, diagnostics, err := prepareDeserializerSettings(settings)
	if err != nil {
		return nil, err
	}

	doc, err := LoadJSONFromStream(st)
	if err != nil {
		return nil, err
	}
	if err := ValidateHeader(doc); err != nil {
		return nil, err
	}

	className := envelopeClassName(doc)
	ids := loadSettings.Registry.FindTypeIDsByName(className)
	if len(ids) == 0 {
		return nil, fmt.Errorf("cannot find a registered type for class %s", className)
	}

	id := ids[0]
	instance, err := loadSettings.Registry.ConstructDefault(id)
	if err != nil {
		return nil, err
	}

	rc := mapper.Load(instance, id, envelopeClassData(doc), loadSettings)
	if err := loadOutcome(rc, diagnostics); err != nil {
		return nil, err
	}
	return instance, nil
}

// LoadAnyObjectFromFile is LoadAnyObjectFromStream over a read-only file
// stream.
func LoadAnyObjectFromFile(path string, settings *DeserializerSettings) (any, error) {
	in, err := stream.OpenFile(path, stream.ModeRead)
	if err != nil {
		return nil, fmt.Errorf("error opening file %q for reading: %w", path, err)
	}
	defer in.Close()
	return LoadAnyObjectFromStream(in, settings)
}
