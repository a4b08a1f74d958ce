package colander

import (
	srcjson "github.com/tomster/colander/source/json"
	srcyaml "github.com/tomster/colander/source/yaml"
)

// DeserializeJSON decodes data as JSON and deserializes the resulting cstruct
// against node. Decode failures surface as a CodeParseError leaf on node.
func DeserializeJSON(node *SchemaNode, data []byte) (any, error) {
	cstruct, err := srcjson.DecodeBytes(data)
	if err != nil {
		return nil, NewInvalid(node, CodeParseError, err.Error())
	}
	return node.Deserialize(cstruct)
}

// SerializeJSON serializes appstruct against node and encodes the cstruct as
// JSON.
func SerializeJSON(node *SchemaNode, appstruct any) ([]byte, error) {
	cstruct, err := node.Serialize(appstruct)
	if err != nil {
		return nil, err
	}
	return srcjson.Encode(cstruct)
}

// DeserializeYAML decodes data as YAML and deserializes the resulting cstruct
// against node.
func DeserializeYAML(node *SchemaNode, data []byte) (any, error) {
	cstruct, err := srcyaml.DecodeBytes(data)
	if err != nil {
		return nil, NewInvalid(node, CodeParseError, err.Error())
	}
	return node.Deserialize(cstruct)
}

// SerializeYAML serializes appstruct against node and encodes the cstruct as
// YAML.
func SerializeYAML(node *SchemaNode, appstruct any) ([]byte, error) {
	cstruct, err := node.Serialize(appstruct)
	if err != nil {
		return nil, err
	}
	return srcyaml.Encode(cstruct)
}
