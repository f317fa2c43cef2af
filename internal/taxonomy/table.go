package taxonomy

// Version of the built-in table. Bump whenever builtinEntries changes so
// cached analyses keyed on it are invalidated.
const Version = "1.4.0"

// builtinEntries is the canonical risk ingredient table. Order matters:
// substring ties are broken by position, so broader names must come after the
// more specific ones that contain them ("high fructose corn syrup" before
// "corn syrup", "sodium nitrate" before "sodium nitrite" is irrelevant but
// both precede plain "salt").
var builtinEntries = []Entry{
	{
		CanonicalName:    "aspartame",
		ENumber:          "E951",
		Category:         CategoryArtificialSweetener,
		RiskLevel:        RiskHigh,
		Concern:          "Artificial sweetener linked to potential metabolic and neurological concerns",
		AffectedProfiles: []string{"child", "pregnant", "toddler"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/28198207/"},
	},
	{
		CanonicalName:    "sucralose",
		ENumber:          "E955",
		Category:         CategoryArtificialSweetener,
		RiskLevel:        RiskMedium,
		Concern:          "Artificial sweetener that may affect gut microbiome",
		AffectedProfiles: []string{"child", "pregnant", "diabetic"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/31226297/"},
	},
	{
		CanonicalName:    "saccharin",
		ENumber:          "E954",
		Category:         CategoryArtificialSweetener,
		RiskLevel:        RiskLow,
		Concern:          "Artificial sweetener with contested long-term safety data",
		AffectedProfiles: []string{"child", "pregnant"},
	},
	{
		CanonicalName:    "acesulfame potassium",
		Synonyms:         []string{"acesulfame k", "ace-k"},
		ENumber:          "E950",
		Category:         CategoryArtificialSweetener,
		RiskLevel:        RiskMedium,
		Concern:          "Artificial sweetener that may affect blood sugar regulation",
		AffectedProfiles: []string{"child", "diabetic"},
	},
	{
		CanonicalName:    "red 40",
		Synonyms:         []string{"allura red"},
		ENumber:          "E129",
		Category:         CategoryArtificialDye,
		RiskLevel:        RiskHigh,
		Concern:          "Artificial dye associated with hyperactivity in children",
		AffectedProfiles: []string{"child", "toddler"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/21933378/"},
	},
	{
		CanonicalName:    "yellow 5",
		Synonyms:         []string{"tartrazine"},
		ENumber:          "E102",
		Category:         CategoryArtificialDye,
		RiskLevel:        RiskMedium,
		Concern:          "Artificial dye that may cause allergic reactions",
		AffectedProfiles: []string{"child", "toddler"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/21933378/"},
	},
	{
		CanonicalName:    "yellow 6",
		Synonyms:         []string{"sunset yellow"},
		ENumber:          "E110",
		Category:         CategoryArtificialDye,
		RiskLevel:        RiskMedium,
		Concern:          "Artificial dye linked to hyperactivity",
		AffectedProfiles: []string{"child", "toddler"},
	},
	{
		CanonicalName:    "blue 1",
		Synonyms:         []string{"brilliant blue"},
		ENumber:          "E133",
		Category:         CategoryArtificialDye,
		RiskLevel:        RiskLow,
		Concern:          "Artificial dye with limited safety data",
		AffectedProfiles: []string{"child", "toddler"},
	},
	{
		CanonicalName:    "high fructose corn syrup",
		Synonyms:         []string{"hfcs"},
		Category:         CategoryHighSugar,
		RiskLevel:        RiskHigh,
		Concern:          "Associated with obesity, diabetes, and metabolic syndrome",
		AffectedProfiles: []string{"diabetic", "obesity", "cardiac"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/23594708/"},
	},
	{
		CanonicalName:    "corn syrup",
		Category:         CategoryHighSugar,
		RiskLevel:        RiskMedium,
		Concern:          "Refined sugar with high glycemic impact",
		AffectedProfiles: []string{"diabetic", "obesity"},
	},
	{
		CanonicalName:    "sodium nitrate",
		ENumber:          "E251",
		Category:         CategoryPreservative,
		RiskLevel:        RiskHigh,
		Concern:          "Preservative linked to increased cancer risk and harmful during pregnancy",
		AffectedProfiles: []string{"pregnant", "cardiac"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/28487287/"},
	},
	{
		CanonicalName:    "sodium nitrite",
		ENumber:          "E250",
		Category:         CategoryPreservative,
		RiskLevel:        RiskHigh,
		Concern:          "Preservative that may form carcinogenic compounds",
		AffectedProfiles: []string{"pregnant", "cardiac"},
		Evidence:         []string{"https://pubmed.ncbi.nlm.nih.gov/28487287/"},
	},
	{
		CanonicalName:    "bha",
		Synonyms:         []string{"butylated hydroxyanisole"},
		ENumber:          "E320",
		Category:         CategoryPreservative,
		RiskLevel:        RiskMedium,
		Concern:          "Preservative classified as possibly carcinogenic",
		AffectedProfiles: []string{"pregnant", "child"},
	},
	{
		CanonicalName:    "bht",
		Synonyms:         []string{"butylated hydroxytoluene"},
		ENumber:          "E321",
		Category:         CategoryPreservative,
		RiskLevel:        RiskMedium,
		Concern:          "Preservative with potential endocrine disruption",
		AffectedProfiles: []string{"pregnant", "child"},
	},
	{
		CanonicalName:    "tbhq",
		Synonyms:         []string{"tertiary butylhydroquinone"},
		ENumber:          "E319",
		Category:         CategoryPreservative,
		RiskLevel:        RiskMedium,
		Concern:          "Preservative that may affect immune response at high intake",
		AffectedProfiles: []string{"child"},
	},
	{
		CanonicalName:    "sodium benzoate",
		ENumber:          "E211",
		Category:         CategoryPreservative,
		RiskLevel:        RiskLow,
		Concern:          "Preservative that may form benzene when combined with vitamin C",
		AffectedProfiles: []string{"child"},
	},
	{
		CanonicalName:    "partially hydrogenated",
		Synonyms:         []string{"hydrogenated oil"},
		Category:         CategoryHarmfulFat,
		RiskLevel:        RiskHigh,
		Concern:          "Contains trans fats linked to heart disease",
		AffectedProfiles: []string{"cardiac", "hypertensive", "diabetic"},
	},
	{
		CanonicalName:    "trans fat",
		Category:         CategoryHarmfulFat,
		RiskLevel:        RiskHigh,
		Concern:          "Strongly linked to cardiovascular disease",
		AffectedProfiles: []string{"cardiac", "hypertensive"},
	},
	{
		CanonicalName:    "caffeine",
		Category:         CategoryStimulant,
		RiskLevel:        RiskMedium,
		Concern:          "Stimulant that can affect sleep, blood pressure, and fetal development",
		AffectedProfiles: []string{"pregnant", "child", "hypertensive", "senior"},
	},
	{
		CanonicalName:    "monosodium glutamate",
		Synonyms:         []string{"msg"},
		ENumber:          "E621",
		Category:         CategoryFlavorEnhancer,
		RiskLevel:        RiskLow,
		Concern:          "May cause sensitivity reactions in some individuals",
		AffectedProfiles: []string{"adult"},
	},
	{
		CanonicalName:    "salt",
		Synonyms:         []string{"sodium chloride"},
		Category:         CategoryHighSodium,
		RiskLevel:        RiskMedium,
		Concern:          "Sodium content may raise blood pressure",
		AffectedProfiles: []string{"hypertensive", "cardiac"},
	},
}
