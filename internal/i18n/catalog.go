// internal/i18n/catalog.go
package i18n

// uiStrings is the user-facing message catalog. Every entry carries both
// variants; Lookup returns the key itself for unknown keys so a typo shows
// up in the UI instead of disappearing silently.
var uiStrings = map[string]Text{
	"companyName": {
		AR: "مؤسسة عبدالله مهدر إبراهيم الليثي",
		EN: "Abdullah Mehdar Ibrahim Al Lithy",
	},
	"heroTitle": {
		AR: "رواد حلول التصوير والطباعة الاحترافية",
		EN: "Leaders in Professional Imaging & Printing Solutions",
	},
	"heroSubtitle": {
		AR: "نقدم أجود خامات التصوير ومواد الطباعة للجملة والتجزئة منذ سنوات. متخصصون في توفير الحلول المتكاملة للمصورين والمطابع.",
		EN: "Providing the finest photographic materials and printing supplies for wholesale & retail. We specialize in integrated solutions for photographers and print shops.",
	},
	"exploreProducts": {AR: "استكشف منتجاتنا", EN: "Explore Products"},
	"contactUs":       {AR: "اتصل بنا", EN: "Contact Us"},
	"aboutTitle":      {AR: "عن المؤسسة", EN: "About Us"},
	"productsTitle":   {AR: "تخصصاتنا ومنتجاتنا", EN: "Our Specialties & Products"},
	"formName":        {AR: "الاسم الكامل", EN: "Full Name"},
	"formEmail":       {AR: "البريد الإلكتروني", EN: "Email Address"},
	"formMessage":     {AR: "الرسالة", EN: "Your Message"},
	"formSubmit":      {AR: "إرسال الطلب", EN: "Send Inquiry"},
	"cartTitle":       {AR: "سلة الطلبات", EN: "Your Quote"},
	"cartEmpty":       {AR: "السلة فارغة", EN: "Cart is empty"},
	"addToCart":       {AR: "أضف للسلة", EN: "Add to Cart"},
	"sendWhatsApp":    {AR: "إرسال الطلب عبر واتساب", EN: "Send Quote via WhatsApp"},
	"clearCart":       {AR: "إفراغ السلة", EN: "Clear Cart"},
	"quantity":        {AR: "الكمية", EN: "Quantity"},
	"orderQuantity":   {AR: "الكمية", EN: "Qty"},
	"explorePage":     {AR: "استكشف جميع المنتجات", EN: "Explore All Products"},
	"allCategories":   {AR: "جميع الفئات", EN: "All Categories"},
	"noProductsFound": {AR: "لم يتم العثور على منتجات", EN: "No products found"},
	"backToProducts":  {AR: "العودة إلى المنتجات", EN: "Back to Products"},
	"productDetails":  {AR: "تفاصيل المنتج", EN: "Product Details"},
	"priceOnRequest":  {AR: "السعر عند الاستفسار", EN: "Price on Request"},
	"loading":         {AR: "جاري التحميل...", EN: "Loading..."},
	"productNotFound": {AR: "المنتج غير موجود", EN: "Product Not Found"},
	"total":           {AR: "الإجمالي", EN: "Total"},
	"currency":        {AR: "ر.س", EN: "SAR"},
	"addedToCart":     {AR: "تمت الإضافة إلى السلة!", EN: "Added to cart!"},
	"orderHeader": {
		AR: "مرحباً، أود طلب المنتجات التالية:",
		EN: "Hello, I would like to order the following products:",
	},
	"orderFooter": {AR: "شكراً لكم!", EN: "Thank you!"},
	"unpricedItems": {
		AR: "منتجات بسعر عند الاستفسار",
		EN: "Items priced on request",
	},
	"somethingWentWrong": {
		AR: "حدث خطأ ما، يرجى المحاولة مرة أخرى",
		EN: "Something went wrong, please try again",
	},
	"invalidPassword": {
		AR: "كلمة المرور غير صحيحة",
		EN: "Invalid password",
	},
	"maxImagesExceeded": {
		AR: "يمكنك تحميل 4 صور كحد أقصى",
		EN: "You can upload maximum 4 images",
	},
	"inquirySent": {
		AR: "تم إرسال رسالتك بنجاح",
		EN: "Your message has been sent",
	},
}

// Lookup returns the message for key in the given language.
func Lookup(key string, lang Language) string {
	if t, ok := uiStrings[key]; ok {
		return t.Get(lang)
	}
	return key
}

// Strings returns the full catalog rendered for one language,
// keyed the same way the lookup table is.
func Strings(lang Language) map[string]string {
	out := make(map[string]string, len(uiStrings))
	for key, t := range uiStrings {
		out[key] = t.Get(lang)
	}
	return out
}
