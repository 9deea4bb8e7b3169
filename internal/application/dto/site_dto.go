package dto

import "time"

// SiteTextRequest upsert de un texto.
type SiteTextRequest struct {
	Clave       string  `json:"clave" validate:"required,max=64"`
	Valor       *string `json:"valor" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

// SiteTextBulkRequest upsert masivo { textos: { clave: valor } }.
type SiteTextBulkRequest struct {
	Textos map[string]string `json:"textos" validate:"required,min=1"`
}

// SiteTextResponse salida de un texto.
type SiteTextResponse struct {
	Seccion     string    `json:"seccion"`
	Clave       string    `json:"clave"`
	Valor       string    `json:"valor"`
	Descripcion *string   `json:"descripcion"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteTextsResponse textos de una sección como mapa clave -> valor.
type SiteTextsResponse struct {
	Success bool              `json:"success"`
	Data    map[string]string `json:"data"`
	Count   int               `json:"count"`
}

// BulkItemError fallo de una clave en un upsert masivo.
type BulkItemError struct {
	Clave   string `json:"clave"`
	Mensaje string `json:"mensaje"`
}

// SiteTextBulkResponse resultado del upsert masivo (207 si hay errores parciales).
type SiteTextBulkResponse struct {
	Success   bool            `json:"success"`
	Mensaje   string          `json:"mensaje"`
	Guardados []string        `json:"guardados"`
	Errores   []BulkItemError `json:"errores,omitempty"`
}

// SiteImageRequest upsert de una imagen por tipo con URL ya subida.
type SiteImageRequest struct {
	Type string `json:"type" form:"type" validate:"required,max=64"`
	URL  string `json:"url" form:"url" validate:"omitempty,url"`
}

// SiteImageResponse salida de una imagen.
type SiteImageResponse struct {
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInfoRequest edición del bloque de contacto.
type ContactInfoRequest struct {
	OrgNombre   string `json:"org_nombre" validate:"required"`
	TelefonoLbl string `json:"telefono_lbl" validate:"required"`
	TelefonoVal string `json:"telefono_val" validate:"required"`
	EmailLbl    string `json:"email_lbl" validate:"required"`
	EmailVal    string `json:"email_val" validate:"required,email"`
	TextoIntro  string `json:"texto_intro" validate:"required"`
	TextoCTA    string `json:"texto_cta" validate:"required"`
	HeaderTitle string `json:"header_title"`
}

// ContactInfoResponse bloque de contacto.
type ContactInfoResponse struct {
	OrgNombre   string     `json:"org_nombre"`
	TelefonoLbl string     `json:"telefono_lbl"`
	TelefonoVal string     `json:"telefono_val"`
	EmailLbl    string     `json:"email_lbl"`
	EmailVal    string     `json:"email_val"`
	TextoIntro  string     `json:"texto_intro"`
	TextoCTA    string     `json:"texto_cta"`
	HeaderTitle string     `json:"header_title"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// UploadResponse resultado de /upload.
type UploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
