// file: internals/features/students/model/student_model_test.go
package model

import (
	"encoding/json"
	"testing"
)

func TestStudentJSONFieldsAreCamelCase(t *testing.T) {
	data, err := json.Marshal(&StudentModel{LastName: "Cruz", FirstName: "Ana"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, want := range []string{"lastName", "firstName", "grlvl", "sy", "archived", "archivedAt", "createdAt", "updatedAt"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing field %q in %s", want, data)
		}
	}
	for _, bad := range []string{"created_at", "updated_at", "last_name", "archived_at"} {
		if _, ok := fields[bad]; ok {
			t.Errorf("snake_case field %q leaked into the JSON shape", bad)
		}
	}
}
