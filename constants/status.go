package constants

// ArtifactRole labels file-level artifacts attached to an item or unit.
type ArtifactRole string

// Stable values (store these exact strings in DB).
const (
	RoleFloorplan ArtifactRole = "floorplan"
	RolePhoto     ArtifactRole = "photo"
	RoleDocument  ArtifactRole = "document"
)

// ArtifactRoles lists the stable role strings for schema-level validation.
var ArtifactRoles = []string{
	string(RoleFloorplan),
	string(RolePhoto),
	string(RoleDocument),
}

// ExtractionMethod records which step of the fallback chain produced an
// attachment's text.
type ExtractionMethod string

const (
	MethodNativeText ExtractionMethod = "native-text" // text layer / structured reader
	MethodConverted  ExtractionMethod = "converted"   // converted to PDF, then text layer
	MethodOCR        ExtractionMethod = "ocr"         // rasterized pages + tesseract
	MethodNone       ExtractionMethod = ""            // whole chain failed
)
