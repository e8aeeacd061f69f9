package search

import (
	"github.com/volatiletech/null/v8"

	"github.com/lexcounsel/site-backend/consts"
)

var arText = null.StringFrom

// Static site content indexed by the search box. Order is significant: results and
// suggestions are returned in this order.
var corpus = []*SearchResult{
	{
		ID:          1,
		Title:       "Corporate Law & Business Services",
		TitleAr:     arText("القانون التجاري وخدمات الأعمال"),
		Excerpt:     "Comprehensive corporate legal services including company formation, mergers & acquisitions, corporate restructuring, and regulatory compliance. Our experienced team ensures your business operates within legal frameworks while maximizing growth opportunities.",
		ExcerptAr:   arText("خدمات قانونية شاملة للشركات تشمل تأسيس الشركات والاندماج والاستحواذ وإعادة هيكلة الشركات والامتثال التنظيمي. يضمن فريقنا ذو الخبرة أن يعمل عملك ضمن الأطر القانونية مع تعظيم فرص النمو."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/corporate-law",
		Tags:        []string{"Corporate Law", "Business Formation", "Mergers & Acquisitions", "Compliance"},
		TagsAr:      []string{"القانون التجاري", "تأسيس الأعمال", "الاندماج والاستحواذ", "الامتثال"},
	},
	{
		ID:          2,
		Title:       "Real Estate & Property Law",
		TitleAr:     arText("قانون العقارات والممتلكات"),
		Excerpt:     "Expert legal services for all real estate matters including property transactions, development projects, leasing agreements, and dispute resolution. We help clients navigate complex property laws and protect their real estate investments.",
		ExcerptAr:   arText("خدمات قانونية متخصصة لجميع مسائل العقارات بما في ذلك معاملات العقارات ومشاريع التطوير وعقود الإيجار وحل النزاعات. نساعد العملاء على التنقل في قوانين العقارات المعقدة وحماية استثماراتهم العقارية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/real-estate",
		Tags:        []string{"Real Estate", "Property Transactions", "Development", "Leasing"},
		TagsAr:      []string{"العقارات", "معاملات العقارات", "التطوير", "الإيجار"},
	},
	{
		ID:          3,
		Title:       "Intellectual Property Protection",
		TitleAr:     arText("حماية الملكية الفكرية"),
		Excerpt:     "Comprehensive IP services including trademark registration, patent applications, copyright protection, and IP litigation. Our specialists help businesses protect their innovations, brands, and creative works in domestic and international markets.",
		ExcerptAr:   arText("خدمات شاملة للملكية الفكرية تشمل تسجيل العلامات التجارية وطلبات البراءات وحماية حقوق النشر والمنازعات المتعلقة بالملكية الفكرية. يساعد متخصصونا الشركات على حماية ابتكاراتها وعلاماتها التجارية وأعمالها الإبداعية في الأسواق المحلية والدولية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/intellectual-property",
		Tags:        []string{"Intellectual Property", "Trademarks", "Patents", "Copyright"},
		TagsAr:      []string{"الملكية الفكرية", "العلامات التجارية", "البراءات", "حقوق النشر"},
	},
	{
		ID:          4,
		Title:       "International Arbitration Services",
		TitleAr:     arText("خدمات التحكيم الدولي"),
		Excerpt:     "Specialized international arbitration and dispute resolution services for complex cross-border commercial disputes. Our arbitration experts provide efficient, confidential, and cost-effective resolution of international business conflicts.",
		ExcerptAr:   arText("خدمات متخصصة للتحكيم الدولي وحل النزاعات للمنازعات التجارية المعقدة عبر الحدود. يوفر خبراء التحكيم لدينا حلاً فعالاً وسرياً ومنخفض التكلفة للنزاعات التجارية الدولية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/arbitration",
		Tags:        []string{"Arbitration", "International Disputes", "Commercial Law", "Cross-border"},
		TagsAr:      []string{"التحكيم", "النزاعات الدولية", "القانون التجاري", "عبر الحدود"},
	},
	{
		ID:          5,
		Title:       "Banking & Financial Services Law",
		TitleAr:     arText("قانون الخدمات المصرفية والمالية"),
		Excerpt:     "Expert legal counsel for banks, financial institutions, and fintech companies. We provide regulatory compliance, transaction structuring, risk management, and dispute resolution services tailored to the financial sector.",
		ExcerptAr:   arText("استشارات قانونية متخصصة للبنوك والمؤسسات المالية وشركات التكنولوجيا المالية. نقدم خدمات الامتثال التنظيمي وهيكلة المعاملات وإدارة المخاطر وحل النزاعات المصممة خصيصاً للقطاع المالي."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/banking-financial",
		Tags:        []string{"Banking Law", "Financial Services", "Regulatory Compliance", "Fintech"},
		TagsAr:      []string{"قانون البنوك", "الخدمات المالية", "الامتثال التنظيمي", "التكنولوجيا المالية"},
	},
	{
		ID:          6,
		Title:       "Employment & Labor Law",
		TitleAr:     arText("قانون العمل والعمال"),
		Excerpt:     "Comprehensive employment law services including workplace policies, employment contracts, labor disputes, and regulatory compliance. We help employers and employees navigate complex labor laws and protect their rights.",
		ExcerptAr:   arText("خدمات شاملة لقانون العمل تشمل سياسات مكان العمل وعقود العمل ونزاعات العمل والامتثال التنظيمي. نساعد أصحاب العمل والموظفين على التنقل في قوانين العمل المعقدة وحماية حقوقهم."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/employment-law",
		Tags:        []string{"Employment Law", "Labor Disputes", "Workplace Policies", "Contracts"},
		TagsAr:      []string{"قانون العمل", "نزاعات العمل", "سياسات مكان العمل", "العقود"},
	},
	{
		ID:          7,
		Title:       "Tax Law & Planning",
		TitleAr:     arText("قانون الضرائب والتخطيط"),
		Excerpt:     "Strategic tax planning and compliance services for individuals and businesses. Our tax experts help clients optimize their tax positions while ensuring full compliance with local and international tax regulations.",
		ExcerptAr:   arText("خدمات التخطيط الضريبي الاستراتيجي والامتثال للأفراد والشركات. يساعد خبراء الضرائب لدينا العملاء على تحسين أوضاعهم الضريبية مع ضمان الامتثال الكامل للوائح الضريبية المحلية والدولية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/tax-law",
		Tags:        []string{"Tax Law", "Tax Planning", "Compliance", "International Tax"},
		TagsAr:      []string{"قانون الضرائب", "التخطيط الضريبي", "الامتثال", "الضرائب الدولية"},
	},
	{
		ID:          8,
		Title:       "Criminal Defense & Litigation",
		TitleAr:     arText("الدفاع الجنائي والمرافعة"),
		Excerpt:     "Expert criminal defense representation for individuals and businesses facing criminal charges. Our litigation team provides aggressive defense strategies and ensures clients receive fair treatment throughout the legal process.",
		ExcerptAr:   arText("تمثيل متخصص للدفاع الجنائي للأفراد والشركات التي تواجه تهم جنائية. يوفر فريق المرافعة لدينا استراتيجيات دفاع قوية ويضمن حصول العملاء على معاملة عادلة طوال العملية القانونية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/criminal-defense",
		Tags:        []string{"Criminal Defense", "Litigation", "Legal Representation", "Criminal Law"},
		TagsAr:      []string{"الدفاع الجنائي", "المرافعة", "التمثيل القانوني", "القانون الجنائي"},
	},
	{
		ID:          9,
		Title:       "Family Law & Divorce Services",
		TitleAr:     arText("قانون الأسرة وخدمات الطلاق"),
		Excerpt:     "Compassionate family law services including divorce proceedings, child custody, alimony, and family mediation. Our family law specialists help clients navigate emotional legal matters with sensitivity and expertise.",
		ExcerptAr:   arText("خدمات قانون الأسرة الرحيمة تشمل إجراءات الطلاق وحضانة الأطفال والنفقة والوساطة الأسرية. يساعد متخصصو قانون الأسرة لدينا العملاء على التنقل في المسائل القانونية العاطفية بحساسية وخبرة."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/family-law",
		Tags:        []string{"Family Law", "Divorce", "Child Custody", "Mediation"},
		TagsAr:      []string{"قانون الأسرة", "الطلاق", "حضانة الأطفال", "الوساطة"},
	},
	{
		ID:          10,
		Title:       "Environmental Law & Compliance",
		TitleAr:     arText("قانون البيئة والامتثال"),
		Excerpt:     "Environmental law services for businesses and organizations including compliance, permitting, environmental impact assessments, and sustainability legal counsel. We help clients operate responsibly while meeting environmental regulations.",
		ExcerptAr:   arText("خدمات قانون البيئة للشركات والمنظمات تشمل الامتثال والتراخيص وتقييمات الأثر البيئي والاستشارات القانونية للاستدامة. نساعد العملاء على العمل بمسؤولية مع الوفاء باللوائح البيئية."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/environmental-law",
		Tags:        []string{"Environmental Law", "Compliance", "Sustainability", "Permitting"},
		TagsAr:      []string{"قانون البيئة", "الامتثال", "الاستدامة", "التراخيص"},
	},
	{
		ID:          11,
		Title:       "Ahmed Al-Rashid - Senior Partner",
		TitleAr:     arText("أحمد الراشد - شريك أول"),
		Excerpt:     "Ahmed Al-Rashid leads our corporate law practice with over 25 years of experience in international business law. He specializes in cross-border transactions, mergers & acquisitions, and has successfully represented Fortune 500 companies in complex legal matters.",
		ExcerptAr:   arText("يقود أحمد الراشد ممارسة القانون التجاري لدينا مع أكثر من 25 عاماً من الخبرة في قانون الأعمال الدولية. يتخصص في المعاملات عبر الحدود والاندماج والاستحواذ ونجح في تمثيل شركات فورتشن 500 في المسائل القانونية المعقدة."),
		Category:    consts.CAT_TEAM,
		CategoryAr:  arText("الفريق"),
		ReadMoreURL: "/our-team/ahmed-al-rashid",
		Tags:        []string{"Senior Partner", "Corporate Law", "International Business", "M&A"},
		TagsAr:      []string{"شريك أول", "القانون التجاري", "الأعمال الدولية", "الاندماج والاستحواذ"},
	},
	{
		ID:          12,
		Title:       "Sarah Johnson - Intellectual Property Specialist",
		TitleAr:     arText("سارة جونسون - متخصصة الملكية الفكرية"),
		Excerpt:     "Sarah Johnson heads our intellectual property practice with expertise in patent law, trademark registration, and IP litigation. She has helped numerous tech startups and established companies protect their innovations and brands globally.",
		ExcerptAr:   arText("ترأس سارة جونسون ممارسة الملكية الفكرية لدينا مع خبرة في قانون البراءات وتسجيل العلامات التجارية والمنازعات المتعلقة بالملكية الفكرية. ساعدت العديد من شركات التكنولوجيا الناشئة والشركات الراسخة على حماية ابتكاراتها وعلاماتها التجارية عالمياً."),
		Category:    consts.CAT_TEAM,
		CategoryAr:  arText("الفريق"),
		ReadMoreURL: "/our-team/sarah-johnson",
		Tags:        []string{"IP Specialist", "Patent Law", "Trademarks", "Tech Law"},
		TagsAr:      []string{"متخصصة الملكية الفكرية", "قانون البراءات", "العلامات التجارية", "قانون التكنولوجيا"},
	},
	{
		ID:          13,
		Title:       "Mohammed Hassan - Real Estate Expert",
		TitleAr:     arText("محمد حسن - خبير العقارات"),
		Excerpt:     "Mohammed Hassan specializes in real estate law with extensive experience in property development, commercial leasing, and real estate litigation. He has successfully handled multi-million dollar property transactions and complex development projects.",
		ExcerptAr:   arText("يتخصص محمد حسن في قانون العقارات مع خبرة واسعة في تطوير العقارات والإيجار التجاري والمنازعات العقارية. نجح في التعامل مع معاملات العقارات بملايين الدولارات ومشاريع التطوير المعقدة."),
		Category:    consts.CAT_TEAM,
		CategoryAr:  arText("الفريق"),
		ReadMoreURL: "/our-team/mohammed-hassan",
		Tags:        []string{"Real Estate Expert", "Property Development", "Commercial Leasing", "Litigation"},
		TagsAr:      []string{"خبير العقارات", "تطوير العقارات", "الإيجار التجاري", "المرافعة"},
	},
	{
		ID:          14,
		Title:       "Emily Chen - International Arbitration",
		TitleAr:     arText("إيميلي تشين - التحكيم الدولي"),
		Excerpt:     "Emily Chen leads our international arbitration practice with expertise in resolving complex cross-border commercial disputes. She has served as arbitrator and counsel in numerous international arbitration proceedings across multiple jurisdictions.",
		ExcerptAr:   arText("تقود إيميلي تشين ممارسة التحكيم الدولي لدينا مع خبرة في حل النزاعات التجارية المعقدة عبر الحدود. عملت كمحكم ومستشار في العديد من إجراءات التحكيم الدولية عبر ولايات قضائية متعددة."),
		Category:    consts.CAT_TEAM,
		CategoryAr:  arText("الفريق"),
		ReadMoreURL: "/our-team/emily-chen",
		Tags:        []string{"International Arbitration", "Cross-border Disputes", "Commercial Law", "Arbitrator"},
		TagsAr:      []string{"التحكيم الدولي", "النزاعات عبر الحدود", "القانون التجاري", "محكم"},
	},
	{
		ID:          15,
		Title:       "David Rodriguez - Banking & Finance",
		TitleAr:     arText("ديفيد رودريغيز - الخدمات المصرفية والمالية"),
		Excerpt:     "David Rodriguez specializes in banking and financial services law with deep expertise in regulatory compliance, fintech regulations, and financial transactions. He advises major banks and fintech companies on complex regulatory matters.",
		ExcerptAr:   arText("يتخصص ديفيد رودريغيز في قانون الخدمات المصرفية والمالية مع خبرة عميقة في الامتثال التنظيمي ولوائح التكنولوجيا المالية والمعاملات المالية. ينصح البنوك الكبرى وشركات التكنولوجيا المالية في المسائل التنظيمية المعقدة."),
		Category:    consts.CAT_TEAM,
		CategoryAr:  arText("الفريق"),
		ReadMoreURL: "/our-team/david-rodriguez",
		Tags:        []string{"Banking Law", "Financial Services", "Regulatory Compliance", "Fintech"},
		TagsAr:      []string{"قانون البنوك", "الخدمات المالية", "الامتثال التنظيمي", "التكنولوجيا المالية"},
	},
	{
		ID:          16,
		Title:       "Legal Consultation Process",
		TitleAr:     arText("عملية الاستشارة القانونية"),
		Excerpt:     "Our legal consultation process begins with a comprehensive assessment of your legal needs. We provide personalized legal strategies, clear communication throughout the process, and dedicated support to achieve the best possible outcomes for your case.",
		ExcerptAr:   arText("تبدأ عملية الاستشارة القانونية لدينا بتقييم شامل لاحتياجاتك القانونية. نقدم استراتيجيات قانونية مخصصة وتواصل واضح طوال العملية ودعم مخصص لتحقيق أفضل النتائج الممكنة لقضيتك."),
		Category:    consts.CAT_SERVICES,
		CategoryAr:  arText("الخدمات"),
		ReadMoreURL: "/services/consultation",
		Tags:        []string{"Legal Consultation", "Legal Strategy", "Client Support", "Process"},
		TagsAr:      []string{"الاستشارة القانونية", "الاستراتيجية القانونية", "دعم العملاء", "العملية"},
	},
	{
		ID:          17,
		Title:       "Client Success Stories",
		TitleAr:     arText("قصص نجاح العملاء"),
		Excerpt:     "Discover how we've helped clients achieve successful outcomes in complex legal matters. Our track record includes landmark cases in corporate law, successful IP protection strategies, and favorable resolutions in international disputes.",
		ExcerptAr:   arText("اكتشف كيف ساعدنا العملاء على تحقيق نتائج ناجحة في المسائل القانونية المعقدة. يتضمن سجلنا حالات بارزة في القانون التجاري واستراتيجيات حماية الملكية الفكرية الناجحة والحلول المواتية في النزاعات الدولية."),
		Category:    consts.CAT_ABOUT,
		CategoryAr:  arText("حولنا"),
		ReadMoreURL: "/about-us/success-stories",
		Tags:        []string{"Success Stories", "Case Studies", "Client Outcomes", "Track Record"},
		TagsAr:      []string{"قصص النجاح", "دراسات الحالة", "نتائج العملاء", "سجل الأداء"},
	},
	{
		ID:          18,
		Title:       "Legal Blog - Latest Insights",
		TitleAr:     arText("المدونة القانونية - أحدث الرؤى"),
		Excerpt:     "Stay informed with our latest legal insights, industry updates, and expert analysis. Our blog covers topics ranging from corporate law developments to international legal trends, providing valuable information for businesses and individuals.",
		ExcerptAr:   arText("ابق على اطلاع بأحدث رؤانا القانونية وتحديثات الصناعة والتحليل الخبير. تغطي مدونتنا مواضيع تتراوح من تطورات القانون التجاري إلى الاتجاهات القانونية الدولية، مما يوفر معلومات قيمة للشركات والأفراد."),
		Category:    consts.CAT_BLOG,
		CategoryAr:  arText("المدونة"),
		ReadMoreURL: "/blogs",
		Tags:        []string{"Legal Blog", "Industry Insights", "Legal Updates", "Expert Analysis"},
		TagsAr:      []string{"المدونة القانونية", "رؤى الصناعة", "التحديثات القانونية", "التحليل الخبير"},
	},
	{
		ID:          19,
		Title:       "Contact Our Legal Team",
		TitleAr:     arText("اتصل بفريقنا القانوني"),
		Excerpt:     "Ready to discuss your legal needs? Contact our experienced legal team for a confidential consultation. We offer flexible appointment scheduling and are committed to providing responsive, professional legal services tailored to your specific requirements.",
		ExcerptAr:   arText("هل أنت مستعد لمناقشة احتياجاتك القانونية؟ اتصل بفريقنا القانوني ذو الخبرة للحصول على استشارة سرية. نقدم جدولة مواعيد مرنة ونلتزم بتقديم خدمات قانونية استجابة ومهنية مصممة خصيصاً لمتطلباتك."),
		Category:    consts.CAT_CONTACT,
		CategoryAr:  arText("اتصل بنا"),
		ReadMoreURL: "/contact-us",
		Tags:        []string{"Contact", "Legal Consultation", "Appointment", "Professional Services"},
		TagsAr:      []string{"اتصل بنا", "الاستشارة القانونية", "الموعد", "الخدمات المهنية"},
	},
	{
		ID:          20,
		Title:       "Office Locations & Hours",
		TitleAr:     arText("مواقع المكاتب وساعات العمل"),
		Excerpt:     "Visit our conveniently located offices in major business districts. We offer flexible appointment hours and are available for urgent legal matters. Our modern facilities provide a professional environment for confidential legal consultations.",
		ExcerptAr:   arText("زر مكاتبنا المتمركزة بسهولة في المناطق التجارية الرئيسية. نقدم ساعات مواعيد مرنة ومتاحون للمسائل القانونية العاجلة. توفر مرافقنا الحديثة بيئة مهنية للاستشارات القانونية السرية."),
		Category:    consts.CAT_CONTACT,
		CategoryAr:  arText("اتصل بنا"),
		ReadMoreURL: "/contact-us/locations",
		Tags:        []string{"Office Locations", "Business Hours", "Appointments", "Facilities"},
		TagsAr:      []string{"مواقع المكاتب", "ساعات العمل", "المواعيد", "المرافق"},
	},
}

// Corpus returns the searchable records in their fixed order.
// The slice is a copy; records themselves must be treated as read only.
func Corpus() []*SearchResult {
	c := make([]*SearchResult, len(corpus))
	copy(c, corpus)
	return c
}
