package entity

import "time"

// Secciones editables del sitio.
const (
	SectionHome          = "home"
	SectionNuestroEquipo = "nuestroequipo"
	SectionTienda        = "tienda"
	SectionAliados       = "aliados"
	SectionHistoria      = "historia"
	SectionTestimonios   = "testimonios"
	SectionContacto      = "contacto"
	SectionCategorias    = "categorias"
	SectionVoluntariado  = "voluntariado"
)

// MaxSiteTextLen longitud máxima de un texto editable.
const MaxSiteTextLen = 2000

// TextSections secciones con textos editables.
var TextSections = []string{SectionHome, SectionNuestroEquipo, SectionTienda, SectionAliados, SectionHistoria}

// ImageSections secciones con imágenes editables.
var ImageSections = []string{
	SectionHome, SectionNuestroEquipo, SectionTestimonios, SectionContacto,
	SectionAliados, SectionCategorias, SectionVoluntariado,
}

// HomeTextKeys claves permitidas en la sección home.
var HomeTextKeys = []string{
	"header_l1", "header_l2", "header_l3",
	"about_titulo", "about_sub",
	"mision_titulo", "mision_desc",
	"vision_titulo", "vision_desc",
	"valores_titulo", "valores_sub",
	"noticias_titulo", "noticias_sub",
}

// SiteText texto editable identificado por (sección, clave).
type SiteText struct {
	Seccion     string
	Clave       string
	Valor       string
	Descripcion *string
	UpdatedAt   time.Time
}

// SiteImage imagen editable identificada por (sección, tipo).
type SiteImage struct {
	Seccion   string
	Tipo      string
	URL       string
	UpdatedAt time.Time
}

// ContactInfo bloque de contacto del sitio (fila única).
type ContactInfo struct {
	OrgNombre   string
	TelefonoLbl string
	TelefonoVal string
	EmailLbl    string
	EmailVal    string
	TextoIntro  string
	TextoCTA    string
	HeaderTitle string
	UpdatedAt   *time.Time
}

// DefaultContactInfo valores mostrados mientras el bloque no se haya editado.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		OrgNombre:   "Organización de Béisbol PILOTOS - FAH",
		TelefonoLbl: "NUESTRO NÚMERO",
		TelefonoVal: "+504 9918-2456",
		EmailLbl:    "CORREO ELECTRÓNICO",
		EmailVal:    "pilotoshn@outlook.com",
		TextoIntro:  "Comparta su experiencia con nosotros.",
		TextoCTA:    "Envíe una historia o testimonio.",
		HeaderTitle: "Ponte en Contacto",
	}
}

// Contains indica si s está en list.
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
