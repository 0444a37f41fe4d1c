/*
Copyright 2026 Glossa Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package localedb

import (
	"database/sql/driver"
	"fmt"

	"github.com/glossa-project/glossa/locale"
)

// Column wraps a Locale for direct use as a database/sql struct field,
// storing the canonical string form. A NULL column scans to the zero
// Locale ("und").
type Column struct {
	Locale locale.Locale
}

// Value implements driver.Valuer.
func (c Column) Value() (driver.Value, error) {
	return c.Locale.String(), nil
}

// Scan implements sql.Scanner. Stored values are trusted canonical output
// and are decomposed without registry validation, as in Text.Load.
func (c *Column) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		c.Locale = locale.Locale{}
		return nil
	case string:
		l, err := decode(x)
		if err != nil {
			return err
		}
		c.Locale = l
		return nil
	case []byte:
		l, err := decode(string(x))
		if err != nil {
			return err
		}
		c.Locale = l
		return nil
	default:
		return fmt.Errorf("localedb: cannot scan %T into a locale column", src)
	}
}
