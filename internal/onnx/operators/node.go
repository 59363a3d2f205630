package operators

// ONNX attribute types (AttributeProto.AttributeType).
const (
	AttributeUndefined = 0
	AttributeFloat     = 1
	AttributeInt       = 2
	AttributeString    = 3
	AttributeFloats    = 6
	AttributeInts      = 7
	AttributeStrings   = 8
)

// Node represents an ONNX operation node.
// This is a local copy of the relevant fields from onnx.NodeProto.
type Node struct {
	Name       string      // Node name (optional)
	OpType     string      // Operation type (e.g., "Gelu", "GeluGrad")
	Inputs     []string    // Input tensor names
	Outputs    []string    // Output tensor names
	Attributes []Attribute // Operation attributes
	Domain     string      // Custom domain (empty for default)
}

// Attribute represents a node attribute.
type Attribute struct {
	Name    string    // Attribute name
	Type    int32     // Attribute type
	F       float32   // FLOAT value
	I       int64     // INT value
	S       []byte    // STRING value
	Floats  []float32 // FLOATS array
	Ints    []int64   // INTS array
	Strings [][]byte  // STRINGS array
}

// GetAttr returns the named attribute, or nil if the node does not carry it.
func GetAttr(node *Node, name string) *Attribute {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return &node.Attributes[i]
		}
	}
	return nil
}

// GetAttrInt returns an integer attribute or default value.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	if a := GetAttr(node, name); a != nil {
		return a.I
	}
	return defaultVal
}

// GetAttrFloat returns a float attribute or default value.
func GetAttrFloat(node *Node, name string, defaultVal float32) float32 {
	if a := GetAttr(node, name); a != nil {
		return a.F
	}
	return defaultVal
}

// GetAttrString returns a string attribute or default value.
func GetAttrString(node *Node, name, defaultVal string) string {
	if a := GetAttr(node, name); a != nil {
		return string(a.S)
	}
	return defaultVal
}
