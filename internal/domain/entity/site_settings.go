package entity

// SiteSettingsID is the fixed identifier of the only site settings document.
const SiteSettingsID = "site_settings"

// DefaultThemeName names exported bundles when no business name is configured.
const DefaultThemeName = "Custom Theme"

// SiteSettings is the storefront singleton holding business information,
// page content blocks and presentation tokens.
type SiteSettings struct {
	ID            string `json:"id"`
	BusinessName  string `json:"businessName"`
	Slogan        string `json:"slogan"`
	Logo          string `json:"logo"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CareerEmail   string `json:"careerEmail"`
	Address       string `json:"address"`
	WhatsappLink  string `json:"whatsappLink"`
	FacebookLink  string `json:"facebookLink"`
	InstagramLink string `json:"instagramLink"`
	TwitterLink   string `json:"twitterLink"`
	YoutubeLink   string `json:"youtubeLink"`

	BulkOrderProductTypes []string `json:"bulkOrderProductTypes"`
	BulkOrderBenefits     []string `json:"bulkOrderBenefits"`

	AboutHeroSubtitle    string        `json:"aboutHeroSubtitle"`
	AboutStoryParagraphs []string      `json:"aboutStoryParagraphs"`
	AboutStoryImage      string        `json:"aboutStoryImage"`
	AboutStats           []AboutStat   `json:"aboutStats"`
	AboutVision          string        `json:"aboutVision"`
	AboutVisionPoints    []string      `json:"aboutVisionPoints"`
	AboutMission         string        `json:"aboutMission"`
	AboutMissionPoints   []string      `json:"aboutMissionPoints"`
	AboutValues          []AboutValue  `json:"aboutValues"`
	AboutWhyChooseUs     []AboutReason `json:"aboutWhyChooseUs"`

	Theme      *Theme                       `json:"theme,omitempty"`
	PageStyles map[string]map[string]string `json:"pageStyles,omitempty"`
}

type AboutStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type AboutValue struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type AboutReason struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Theme groups the design tokens the storefront turns into CSS variables.
type Theme struct {
	Colors     map[string]string `json:"colors,omitempty"`
	Typography *Typography       `json:"typography,omitempty"`
	Header     *HeaderTheme      `json:"header,omitempty"`
	Footer     *FooterTheme      `json:"footer,omitempty"`
	Buttons    *ButtonTheme      `json:"buttons,omitempty"`
	Cards      *CardTheme        `json:"cards,omitempty"`
}

type Typography struct {
	FontFamily   string `json:"fontFamily"`
	HeadingFont  string `json:"headingFont"`
	BaseFontSize string `json:"baseFontSize"`
	H1Size       string `json:"h1Size"`
	H2Size       string `json:"h2Size"`
	H3Size       string `json:"h3Size"`
}

type HeaderTheme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	NavText    string `json:"navText"`
	NavHover   string `json:"navHover"`
}

type FooterTheme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	LinkColor  string `json:"linkColor"`
}

type ButtonTheme struct {
	PrimaryBg      string `json:"primaryBg"`
	PrimaryText    string `json:"primaryText"`
	PrimaryHover   string `json:"primaryHover"`
	SecondaryBg    string `json:"secondaryBg"`
	SecondaryText  string `json:"secondaryText"`
	SecondaryHover string `json:"secondaryHover"`
	BorderRadius   string `json:"borderRadius"`
}

type CardTheme struct {
	Background   string `json:"background"`
	Border       string `json:"border"`
	Shadow       string `json:"shadow"`
	BorderRadius string `json:"borderRadius"`
}

// SiteSettingsPatch is a partial settings update; nil fields are left untouched.
type SiteSettingsPatch struct {
	BusinessName  *string `json:"businessName,omitempty"`
	Slogan        *string `json:"slogan,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	CareerEmail   *string `json:"careerEmail,omitempty"`
	Address       *string `json:"address,omitempty"`
	WhatsappLink  *string `json:"whatsappLink,omitempty"`
	FacebookLink  *string `json:"facebookLink,omitempty"`
	InstagramLink *string `json:"instagramLink,omitempty"`
	TwitterLink   *string `json:"twitterLink,omitempty"`
	YoutubeLink   *string `json:"youtubeLink,omitempty"`

	BulkOrderProductTypes *[]string `json:"bulkOrderProductTypes,omitempty"`
	BulkOrderBenefits     *[]string `json:"bulkOrderBenefits,omitempty"`

	AboutHeroSubtitle    *string        `json:"aboutHeroSubtitle,omitempty"`
	AboutStoryParagraphs *[]string      `json:"aboutStoryParagraphs,omitempty"`
	AboutStoryImage      *string        `json:"aboutStoryImage,omitempty"`
	AboutStats           *[]AboutStat   `json:"aboutStats,omitempty"`
	AboutVision          *string        `json:"aboutVision,omitempty"`
	AboutVisionPoints    *[]string      `json:"aboutVisionPoints,omitempty"`
	AboutMission         *string        `json:"aboutMission,omitempty"`
	AboutMissionPoints   *[]string      `json:"aboutMissionPoints,omitempty"`
	AboutValues          *[]AboutValue  `json:"aboutValues,omitempty"`
	AboutWhyChooseUs     *[]AboutReason `json:"aboutWhyChooseUs,omitempty"`

	Theme      *Theme                        `json:"theme,omitempty"`
	PageStyles *map[string]map[string]string `json:"pageStyles,omitempty"`
}

// ThemeNameOf derives the bundle name from the business name of a stored
// settings document.
func ThemeNameOf(settings Document) string {
	if name, _ := settings["businessName"].(string); name != "" {
		return name
	}

	return DefaultThemeName
}

// DefaultSiteSettings returns the settings served before any have been saved.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:            SiteSettingsID,
		BusinessName:  "DryFruto",
		Slogan:        "Live With Health",
		Logo:          "",
		Phone:         "9870990795",
		Email:         "info@dryfruto.com",
		CareerEmail:   "careers@dryfruto.com",
		Address:       "123, Main Street, New Delhi, India",
		WhatsappLink:  "https://wa.me/919870990795",
		FacebookLink:  "",
		InstagramLink: "",
		TwitterLink:   "",
		YoutubeLink:   "",
		BulkOrderProductTypes: []string{
			"Dry Fruits", "Nuts", "Seeds", "Berries", "Gift Boxes", "Mixed Products",
		},
		BulkOrderBenefits: []string{
			"Direct sourcing from farms ensures freshness",
			"Minimum order quantity: 10 kg",
			"Special rates for orders above 100 kg",
			"Custom packaging with your branding",
			"Regular supply contracts available",
			"Quality testing certificates provided",
		},
		AboutHeroSubtitle: "Your trusted partner for premium quality dry fruits, nuts, and seeds since 2014.",
		AboutStoryParagraphs: []string{
			"DryFruto was born from a simple belief: everyone deserves access to pure, high-quality dry fruits at fair prices. What started as a small family business has grown into a trusted name in the dry fruits industry.",
			"We work directly with farmers and suppliers to bring you the freshest products without any middlemen. Our commitment to quality and customer satisfaction has helped us build lasting relationships with thousands of families across India.",
			"Today, we continue our journey with the same passion and dedication, bringing health and happiness to every household through our carefully curated selection of dry fruits, nuts, seeds, and berries.",
		},
		AboutStoryImage: "https://images.unsplash.com/photo-1596591868264-6d8f43c0e648?w=600",
		AboutStats: []AboutStat{
			{Number: "10+", Label: "Years of Experience"},
			{Number: "50K+", Label: "Happy Customers"},
			{Number: "100+", Label: "Premium Products"},
			{Number: "500+", Label: "Cities Served"},
		},
		AboutVision: "To be India's most trusted and preferred destination for premium dry fruits, making healthy eating accessible and affordable for every household. We envision a future where quality nutrition is not a luxury but a way of life for all.",
		AboutVisionPoints: []string{
			"Be the #1 dry fruits brand in India",
			"Reach every corner of the country",
			"Promote healthy living through quality products",
		},
		AboutMission: "To deliver the finest quality dry fruits sourced directly from farms, ensuring freshness, purity, and value for our customers. We are committed to ethical sourcing, sustainable practices, and exceptional customer service.",
		AboutMissionPoints: []string{
			"Source directly from trusted farmers",
			"Maintain highest quality standards",
			"Provide excellent customer experience",
		},
		AboutValues: []AboutValue{
			{Title: "Quality First", Desc: "We source only the finest dry fruits from trusted farms across the globe."},
			{Title: "Natural & Pure", Desc: "No artificial additives, preservatives, or chemicals in our products."},
			{Title: "Trust & Transparency", Desc: "Honest pricing and complete transparency in our business practices."},
			{Title: "Fresh Delivery", Desc: "Carefully packed and delivered fresh to your doorstep."},
		},
		AboutWhyChooseUs: []AboutReason{
			{Name: "Quality Assurance", Desc: "Every product goes through strict quality checks before reaching you."},
			{Name: "Customer Support", Desc: "Dedicated team to assist you with any queries or concerns."},
			{Name: "Logistics", Desc: "Efficient delivery network ensuring timely and safe delivery."},
		},
	}
}
