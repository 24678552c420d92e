package entity

// Document es un documento de atributos libres (suppliers y categories no
// tienen esquema fijo: se guardan tal como los envía el cliente, saneados).
type Document struct {
	ID     string
	Fields map[string]any
}

// Flatten devuelve los campos con la clave id incluida, el formato con el
// que estos documentos viajan en las respuestas JSON.
func (d Document) Flatten() map[string]any {
	out := make(map[string]any, len(d.Fields)+1)
	for k, v := range d.Fields {
		out[k] = v
	}
	out["id"] = d.ID
	return out
}

// Name devuelve el campo name del documento, o cadena vacía si no existe o
// no es string.
func (d Document) Name() string {
	s, _ := d.Fields["name"].(string)
	return s
}
