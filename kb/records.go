package kb

var defaultRecords = []*Record{
	{
		Label:  "rose",
		Name:   "Garden Rose (Rosa spp.)",
		Family: "Rosaceae",
		Group:  "Flowering shrub",
		Image:  "images/rose.jpg",
		Description: `Roses are woody, perennial flowering shrubs widely grown for their attractive and often fragrant blooms.
They usually have multiple stems bearing thorns, and the leaves are compound with serrated leaflets.
Roses prefer well-drained soil and full sun and are extremely popular in ornamental gardens and as cut flowers.`,
		OtherPlants: []string{
			"Wild Rose (Rosa canina)",
			"Damask Rose (Rosa × damascena)",
			"China Rose (Rosa chinensis)",
		},
	},
	{
		Label:  "sunflower",
		Name:   "Sunflower (Helianthus annuus)",
		Family: "Asteraceae",
		Group:  "Tall annual herb",
		Image:  "images/sunflower.jpg",
		Description: `Sunflowers are tall annual herbs known for their large, bright yellow flower heads.
The flower head is a composite of many small florets. The plant has a thick, fibrous stem
and broad, rough leaves, and is cultivated worldwide for edible seeds and oil.`,
		OtherPlants: []string{
			"Jerusalem Artichoke (Helianthus tuberosus)",
			"Oxeye Daisy (Leucanthemum vulgare)",
			"Marigold (Tagetes spp.)",
		},
	},
	{
		Label:  "lavender",
		Name:   "Lavender (Lavandula angustifolia)",
		Family: "Lamiaceae",
		Group:  "Aromatic subshrub",
		Image:  "images/lavender.jpg",
		Description: `Lavender is a small aromatic shrub with narrow, gray-green leaves and violet flower spikes.
It contains essential oils with a strong fragrance and is widely used in perfumery and aromatherapy.`,
		OtherPlants: []string{
			"Rosemary (Salvia rosmarinus)",
			"Sage (Salvia officinalis)",
			"Thyme (Thymus vulgaris)",
		},
	},
	{
		Label:  "bamboo",
		Name:   "Bamboo (Bambusoideae spp.)",
		Family: "Poaceae (Grasses)",
		Group:  "Woody grass",
		Image:  "images/bamboo.jpg",
		Description: `Bamboo is a fast-growing woody grass with hollow, segmented stems called culms.
Many species grow very tall and form dense clumps or groves. Bamboo is an important
material for construction, furniture, paper and also provides edible young shoots.`,
		OtherPlants: []string{
			"Sugarcane (Saccharum officinarum)",
			"Common Reed (Phragmites australis)",
			"Giant Reed (Arundo donax)",
		},
	},
}
