package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/auth"
	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/pkg/config"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Prefix string

	Verifier     ports.IdentityVerifier
	RoleResolver RoleResolver
	Cookie       config.CookieConfig

	RateCounter RateCounter // nil desactiva el rate limit
	RateLimit   RateLimitConfig

	AccountUC     *auth.AccountUseCase
	UserUC        *usecase.UserUseCase
	CreateOrder   OrderCreator
	OrderUC       *orders.OrderUseCase
	ProductUC     *usecase.ProductUseCase
	EventUC       *usecase.EventUseCase
	NewsUC        *usecase.NewsUseCase
	TestimonialUC *usecase.TestimonialUseCase
	PlayerUC      *usecase.PlayerUseCase
	DonationUC    *usecase.DonationUseCase
	ContactUC     *usecase.ContactUseCase
	SiteUC        *usecase.SiteUseCase
	UploadUC      *usecase.UploadUseCase
	LiveStreamUC  *usecase.LiveStreamUseCase
	BoardUC       *usecase.BoardUseCase
	CategoryUC    *usecase.CategoryUseCase
	ReceiptUC     *usecase.DonationReceiptUseCase

	Log *logger.Logger
}

// Router registra las rutas de la API bajo deps.Prefix (por defecto /auth).
func Router(app *fiber.App, deps RouterDeps) {
	prefix := deps.Prefix
	if prefix == "" {
		prefix = "/auth"
	}
	api := app.Group(prefix)

	authn := RequireAuthenticated(deps.Verifier, deps.Cookie.Name, deps.Log)
	admin := []fiber.Handler{authn, RequireRole(deps.RoleResolver, entity.RoleAdmin)}
	calendar := []fiber.Handler{authn, RequireRole(deps.RoleResolver, entity.RoleAdmin, entity.RoleAdminCalendario)}
	limited := RateLimit(deps.RateCounter, deps.RateLimit, deps.Log)

	// Cuentas
	account := NewAccountHandler(deps.AccountUC, deps.UserUC, deps.Cookie)
	api.Post("/signup", limited, account.SignUp)
	api.Post("/signin", limited, account.SignIn)
	api.Post("/signout", account.SignOut)
	api.Post("/restablecer", limited, account.ResetPassword)
	api.Delete("/eliminar", authn, account.DeleteAccount)
	api.Get("/obtenerperfil", authn, account.Profile)
	api.Put("/editarperfil", authn, account.UpdateProfile)
	api.Get("/obteneruid", authn, account.UID)
	api.Get("/obtenerusuarios", with(admin, account.ListUsers)...)
	api.Put("/usuario/:id", with(admin, account.SetRole)...)

	// Órdenes (crear sólo exige sesión)
	order := NewOrderHandler(deps.CreateOrder, deps.OrderUC)
	api.Post("/agregarorden", authn, order.Create)
	api.Get("/misordenes", authn, order.Mine)
	api.Get("/ordenes", with(admin, order.List)...)
	api.Get("/ordenes/:idorden/productos_comprados", with(admin, order.PurchasedProducts)...)
	api.Get("/ordenes/:id", with(admin, order.GetByID)...)
	api.Put("/orden/:idorden", with(admin, order.UpdateStatus)...)
	api.Delete("/eliminarorden/:id", with(admin, order.Delete)...)
	api.Get("/ultimaorden", with(admin, order.Latest)...)
	api.Get("/detalles", with(admin, order.ListLines)...)
	api.Get("/detalles/:id", with(admin, order.GetLine)...)
	api.Post("/agregardetalle", with(admin, order.AddLine)...)
	api.Put("/modificardetalle/:id", with(admin, order.UpdateLine)...)
	api.Delete("/eliminardetalle/:id", with(admin, order.DeleteLine)...)

	// Tienda
	product := NewProductHandler(deps.ProductUC)
	api.Get("/tienda/productos", product.List)
	api.Get("/tienda/productos/:id", product.GetByID)
	api.Post("/tienda/agregarproducto", with(admin, product.Create)...)
	api.Put("/tienda/modificarproducto/:id", with(admin, product.Update)...)
	api.Delete("/tienda/eliminarproducto/:id", with(admin, product.Delete)...)

	// Eventos, noticias, testimonios, jugadores
	content := NewContentHandler(deps.EventUC, deps.NewsUC, deps.TestimonialUC, deps.PlayerUC)
	api.Get("/obtenereventos", content.UpcomingEvents)
	api.Post("/registrarevento", with(calendar, content.CreateEvent)...)
	api.Put("/evento/:id", with(calendar, content.UpdateEvent)...)
	api.Delete("/evento/:id", with(calendar, content.DeleteEvent)...)

	api.Get("/noticias", content.ListNews)
	api.Get("/noticias/:id", content.GetNews)
	api.Post("/agregarnoticia", with(admin, content.CreateNews)...)
	api.Put("/modificarnoticia/:id", with(admin, content.UpdateNews)...)
	api.Delete("/eliminarnoticia/:id", with(admin, content.DeleteNews)...)

	api.Get("/obtenertestimonios", content.ListTestimonials)
	api.Get("/testimonios/destacado", content.FeaturedTestimonial)
	api.Put("/testimonios/destacado", with(admin, content.FeatureTestimonial)...)
	api.Post("/registrartestimonio", with(admin, content.CreateTestimonial)...)
	api.Put("/testimonio/:id", with(admin, content.UpdateTestimonial)...)
	api.Delete("/testimonio/:id", with(admin, content.DeleteTestimonial)...)
	api.Get("/testimoniossite", content.TestimonialsHeader)
	api.Put("/testimoniossite", with(admin, content.UpdateTestimonialsHeader)...)

	api.Get("/jugadores", content.Players)

	// Donaciones y formularios públicos
	forms := NewFormHandler(deps.DonationUC, deps.ContactUC)
	api.Get("/donaciones/productos", forms.ListDonationProducts)
	api.Post("/donaciones/productos", with(admin, forms.CreateDonationProduct)...)
	api.Put("/donaciones/productos/:id", with(admin, forms.UpdateDonationProduct)...)
	api.Delete("/donaciones/productos/:id", with(admin, forms.DeleteDonationProduct)...)
	api.Post("/registrardonacion", limited, forms.RegisterDonation)
	api.Get("/donaciones", with(admin, forms.ListDonations)...)
	api.Put("/donaciones/:id/estado", with(admin, forms.UpdateDonationStatus)...)
	api.Post("/registrarformulario", limited, forms.SubmitContactForm)
	api.Post("/verificar", limited, forms.VerifyCaptcha)
	receipts := NewReceiptHandler(deps.ReceiptUC)
	api.Post("/donaciones/comprobante", authn, limited, receipts.Send)

	// En vivo, junta directiva y categorías
	club := NewClubHandler(deps.LiveStreamUC, deps.BoardUC, deps.CategoryUC)
	api.Post("/registrarenvivo", with(admin, club.CreateLiveStream)...)
	api.Get("/obtenerenvivo", club.CurrentLiveStream)
	api.Put("/video/:id", with(admin, club.UpdateLiveStream)...)
	api.Patch("/envivo/mostrar-anuncio", with(admin, club.SetAnnouncement)...)

	api.Get("/junta-directiva", club.Board)
	api.Post("/junta-directiva", with(admin, club.CreateBoardMember)...)
	api.Put("/junta-directiva/:id", with(admin, club.UpdateBoardMember)...)
	api.Delete("/junta-directiva/:id", with(admin, club.DeleteBoardMember)...)

	// /categorias/carrusel antes que /categorias/:id
	api.Get("/categorias", club.Categories)
	api.Get("/categorias/site", club.CategoriesHeader)
	api.Get("/categorias/site/all", club.CategoriesSite)
	api.Put("/categorias/site/header", with(admin, club.UpdateCategoriesHeader)...)
	api.Put("/categorias/site/carrusel", with(admin, club.UpdateCategoriesCarousel)...)
	api.Get("/categorias/carrusel", club.CategoriesCarousel)
	api.Put("/categorias/carrusel", with(admin, club.UpdateCategoriesCarousel)...)
	api.Put("/categorias/:id", with(admin, club.UpdateCategory)...)

	// Archivos y contenido del sitio. Las rutas /:seccion/... van al final.
	upload := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", with(admin, upload.Upload)...)

	site := NewSiteHandler(deps.SiteUC)
	api.Get("/contacto", site.Contact)
	api.Put("/contacto", with(admin, site.UpdateContact)...)
	api.Get("/:seccion/textos", site.Texts)
	api.Put("/:seccion/textos/bulk", with(admin, site.UpsertTexts)...)
	api.Get("/:seccion/textos/:clave", site.Text)
	api.Put("/:seccion/textos", with(admin, site.UpsertText)...)
	api.Get("/:seccion/images", site.Images)
	api.Put("/:seccion/images", with(admin, site.UpsertImage)...)
}

// with encadena middlewares y handler sin compartir el arreglo de mw.
func with(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}
