// Package config loads annotation-resolution extensions from a YAML file
// and applies them to a registry.
//
// # Overview
//
// A compiler embedding the resolution engine typically extends it once at
// session start: exact-match registrations for project-specific classes
// and custom strategies for open-ended shapes. The extensions file keeps
// those out of the embedding code:
//
//	registrations:
//	  - type: "Decimal"
//	    as: "float64"
//	  - type: "Timestamp"
//	    as: "int64"
//	strategies:
//	  - name: "shapes"
//	    script: |
//	      def resolve(desc):
//	          if desc.kind == "class" and desc.cls == "Shape":
//	              return "Tuple[int64, int64]"
//	          return None
//	  - name: "frames"
//	    file: "frames.star"
//
// Both sides of a registration are annotation expressions; the "as" side
// must resolve through the target registry at apply time. Strategies are
// Starlark scripts, inline or by file path relative to the extensions
// file, appended in file order (file order = priority after built-ins).
package config
