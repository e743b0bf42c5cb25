package i18n

var english = Translation{
	Subtitle:    "Start Your Journey",
	Title:       "Request Proposal",
	Description: "This isn't just a form. It's the beginning of a meticulously planned operation. The more details you provide, the more precise our logistical planning will be.",
	StepsNav:    []string{"01. Logistics", "02. Property", "03. Services", "04. Personal"},
	Buttons: TranslationButtons{
		ContinueProperty: "Continue to Property",
		ContinueServices: "Continue to Services",
		FinalDetails:     "Final Details",
		Back:             "Back",
		Submit:           "Submit Request",
		Processing:       "Processing...",
	},
	Step1: TranslationStep1{
		Title:       "The Route",
		Desc:        "Defining the trajectory of your move.",
		MoveType:    "Move Type",
		Private:     "Private",
		Business:    "Business",
		Origin:      "Origin",
		Destination: "Destination",
		Zip:         "ZIP",
		City:        "City",
		Date:        "Desired Date",
		PickDate:    "Pick a date",
		Flexibility: "Flexibility",
		FlexFixed:   "Fixed Date (Strict)",
		Flex3Days:   "+/- 3 Days",
		FlexWeek:    "+/- 1 Week",
	},
	Step2: TranslationStep2{
		Title:           "Property Scope",
		Desc:            "Volume and access assessment.",
		Surface:         "Surface (m²)",
		Rooms:           "Rooms",
		People:          "People",
		OriginAccess:    "Origin Access",
		DestAccess:      "Destination Access",
		Floor:           "Floor",
		Elevator:        "Elevator",
		LiftYesLarge:    "Yes, Large",
		LiftYesSmall:    "Yes, Small",
		LiftNo:          "No Elevator",
		LiftNeeded:      "External Lift Needed",
		Parking:         "Parking Distance",
		ParkingDriveway: "Driveway / Private",
		ParkingStreet:   "Street (< 20m)",
		ParkingFar:      "Street (> 20m)",
		ParkingPermit:   "Permit Required",
	},
	Step3: TranslationStep3{
		Title:           "Premium Services",
		Desc:            "Customize your white-glove experience.",
		PackingHandling: "Packing & Handling",
		PackSelf:        "Self Pack",
		PackSelfSub:     "Standard",
		PackSelfDesc:    "You pack everything. We transport boxes and furniture.",
		PackFragile:     "Fragile Only",
		PackFragileSub:  "Upgrade",
		PackFragileDesc: "We pack glassware, art, and electronics. You pack clothes/books.",
		PackFull:        "Full Service",
		PackFullSub:     "Recommended",
		PackFullDesc:    "We bring materials and pack absolutely everything.",
		PackVIP:         "VIP White Glove",
		PackVIPSub:      "Premium",
		PackVIPDesc:     "Full pack + Unpack + Organization service.",
		Addons:          "Add-ons",
		Disassembly:     "Furniture Disassembly",
		DisassemblyDesc: "Beds, Wardrobes, Tables",
		Assembly:        "Furniture Assembly",
		AssemblyDesc:    "Re-assembly at destination",
		Cleaning:        "Final Cleaning",
		CleaningDesc:    "With handover guarantee",
		Storage:         "Temporary Storage",
		StorageDesc:     "Secure, climate-controlled",
		Insurance:       "Insurance Value",
		InsStandard:     "Standard Coverage",
		InsMedium:       "Enhanced Coverage",
		InsHigh:         "Premium Coverage",
	},
	Step4: TranslationStep4{
		Title:              "Personal Details",
		Desc:               "Where should we send your quote?",
		Salutation:         "Title",
		Mr:                 "Mr.",
		Ms:                 "Ms.",
		Mx:                 "Mx.",
		Firstname:          "First Name",
		Lastname:           "Last Name",
		Email:              "Email Address",
		Phone:              "Phone Number",
		PreferredContact:   "Preferred Contact Method",
		ContactEmail:       "Email me the quote",
		ContactPhone:       "Call me to discuss details",
		ContactWhatsapp:    "Send via WhatsApp",
		Remarks:            "Additional Remarks / Special Items",
		RemarksPlaceholder: "E.g., Piano, Heavy Safe, Artwork, Narrow Staircase...",
	},
}

var german = Translation{
	Subtitle:    "Beginnen Sie Ihre Reise",
	Title:       "Angebot anfordern",
	Description: "Dies ist nicht nur ein Formular. Es ist der Beginn einer minutiös geplanten Operation. Je mehr Details Sie angeben, desto präziser wird unsere logistische Planung.",
	StepsNav:    []string{"01. Logistik", "02. Objekt", "03. Services", "04. Persönlich"},
	Buttons: TranslationButtons{
		ContinueProperty: "Weiter zum Objekt",
		ContinueServices: "Weiter zu Services",
		FinalDetails:     "Letzte Details",
		Back:             "Zurück",
		Submit:           "Anfrage senden",
		Processing:       "Verarbeite...",
	},
	Step1: TranslationStep1{
		Title:       "Die Route",
		Desc:        "Definition der Umzugsstrecke.",
		MoveType:    "Umzugstyp",
		Private:     "Privat",
		Business:    "Geschäftlich",
		Origin:      "Startort",
		Destination: "Zielort",
		Zip:         "PLZ",
		City:        "Stadt",
		Date:        "Wunschdatum",
		PickDate:    "Datum wählen",
		Flexibility: "Flexibilität",
		FlexFixed:   "Fixes Datum",
		Flex3Days:   "+/- 3 Tage",
		FlexWeek:    "+/- 1 Woche",
	},
	Step2: TranslationStep2{
		Title:           "Objektumfang",
		Desc:            "Volumen- und Zugangsbewertung.",
		Surface:         "Fläche (m²)",
		Rooms:           "Zimmer",
		People:          "Personen",
		OriginAccess:    "Zugang Startort",
		DestAccess:      "Zugang Zielort",
		Floor:           "Etage",
		Elevator:        "Aufzug",
		LiftYesLarge:    "Ja, Groß",
		LiftYesSmall:    "Ja, Klein",
		LiftNo:          "Kein Aufzug",
		LiftNeeded:      "Außenlift nötig",
		Parking:         "Parkdistanz",
		ParkingDriveway: "Einfahrt / Privat",
		ParkingStreet:   "Straße (< 20m)",
		ParkingFar:      "Straße (> 20m)",
		ParkingPermit:   "Bewilligung nötig",
	},
	Step3: TranslationStep3{
		Title:           "Premium Services",
		Desc:            "Passen Sie Ihr Erlebnis an.",
		PackingHandling: "Verpackung & Handling",
		PackSelf:        "Selbstpacken",
		PackSelfSub:     "Standard",
		PackSelfDesc:    "Sie packen alles. Wir transportieren Kisten und Möbel.",
		PackFragile:     "Nur Zerbrechliches",
		PackFragileSub:  "Upgrade",
		PackFragileDesc: "Wir packen Glas, Kunst, Elektronik. Sie Kleidung/Bücher.",
		PackFull:        "Vollservice",
		PackFullSub:     "Empfohlen",
		PackFullDesc:    "Wir bringen Material und packen absolut alles.",
		PackVIP:         "VIP White Glove",
		PackVIPSub:      "Premium",
		PackVIPDesc:     "Packen + Auspacken + Organisationsservice.",
		Addons:          "Zusatzleistungen",
		Disassembly:     "Möbeldemontage",
		DisassemblyDesc: "Betten, Schränke, Tische",
		Assembly:        "Möbelmontage",
		AssemblyDesc:    "Wiederaufbau am Zielort",
		Cleaning:        "Endreinigung",
		CleaningDesc:    "Mit Abnahmegarantie",
		Storage:         "Zwischenlagerung",
		StorageDesc:     "Sicher, klimatisiert",
		Insurance:       "Versicherungswert",
		InsStandard:     "Standarddeckung",
		InsMedium:       "Erweiterte Deckung",
		InsHigh:         "Premiumdeckung",
	},
	Step4: TranslationStep4{
		Title:              "Persönliche Details",
		Desc:               "Wohin sollen wir das Angebot senden?",
		Salutation:         "Anrede",
		Mr:                 "Herr",
		Ms:                 "Frau",
		Mx:                 "Div.",
		Firstname:          "Vorname",
		Lastname:           "Nachname",
		Email:              "E-Mail Adresse",
		Phone:              "Telefonnummer",
		PreferredContact:   "Bevorzugte Kontaktmethode",
		ContactEmail:       "Angebot per E-Mail",
		ContactPhone:       "Rückruf für Details",
		ContactWhatsapp:    "Senden via WhatsApp",
		Remarks:            "Bemerkungen / Spezielles",
		RemarksPlaceholder: "z.B. Klavier, Schwerer Tresor, Kunstwerke, Enges Treppenhaus...",
	},
}

var french = Translation{
	Subtitle:    "Commencez Votre Voyage",
	Title:       "Demander une Offre",
	Description: "Ce n'est pas juste un formulaire. C'est le début d'une opération minutieusement planifiée. Plus vous fournissez de détails, plus notre planification sera précise.",
	StepsNav:    []string{"01. Logistique", "02. Propriété", "03. Services", "04. Personnel"},
	Buttons: TranslationButtons{
		ContinueProperty: "Continuer vers Propriété",
		ContinueServices: "Continuer vers Services",
		FinalDetails:     "Derniers Détails",
		Back:             "Retour",
		Submit:           "Envoyer la Demande",
		Processing:       "Traitement...",
	},
	Step1: TranslationStep1{
		Title:       "La Route",
		Desc:        "Définir la trajectoire de votre déménagement.",
		MoveType:    "Type de Déménagement",
		Private:     "Privé",
		Business:    "Entreprise",
		Origin:      "Origine",
		Destination: "Destination",
		Zip:         "NPA",
		City:        "Ville",
		Date:        "Date Souhaitée",
		PickDate:    "Choisir une date",
		Flexibility: "Flexibilité",
		FlexFixed:   "Date Fixe",
		Flex3Days:   "+/- 3 Jours",
		FlexWeek:    "+/- 1 Semaine",
	},
	Step2: TranslationStep2{
		Title:           "Portée de la Propriété",
		Desc:            "Évaluation du volume et de l'accès.",
		Surface:         "Surface (m²)",
		Rooms:           "Pièces",
		People:          "Personnes",
		OriginAccess:    "Accès Origine",
		DestAccess:      "Accès Destination",
		Floor:           "Étage",
		Elevator:        "Ascenseur",
		LiftYesLarge:    "Oui, Grand",
		LiftYesSmall:    "Oui, Petit",
		LiftNo:          "Pas d'Ascenseur",
		LiftNeeded:      "Monte-meuble requis",
		Parking:         "Distance Parking",
		ParkingDriveway: "Allée / Privé",
		ParkingStreet:   "Rue (< 20m)",
		ParkingFar:      "Rue (> 20m)",
		ParkingPermit:   "Permis Requis",
	},
	Step3: TranslationStep3{
		Title:           "Services Premium",
		Desc:            "Personnalisez votre expérience gant blanc.",
		PackingHandling: "Emballage & Manutention",
		PackSelf:        "Auto-emballage",
		PackSelfSub:     "Standard",
		PackSelfDesc:    "Vous emballez tout. Nous transportons cartons et meubles.",
		PackFragile:     "Fragile Uniquement",
		PackFragileSub:  "Mise à niveau",
		PackFragileDesc: "Nous emballons verre, art, électronique. Vous vêtements/livres.",
		PackFull:        "Service Complet",
		PackFullSub:     "Recommandé",
		PackFullDesc:    "Nous apportons le matériel et emballons absolument tout.",
		PackVIP:         "VIP Gant Blanc",
		PackVIPSub:      "Premium",
		PackVIPDesc:     "Emballage complet + Déballage + Service d'organisation.",
		Addons:          "Suppléments",
		Disassembly:     "Démontage Meubles",
		DisassemblyDesc: "Lits, Armoires, Tables",
		Assembly:        "Montage Meubles",
		AssemblyDesc:    "Remontage à destination",
		Cleaning:        "Nettoyage Final",
		CleaningDesc:    "Avec garantie de remise",
		Storage:         "Stockage Temporaire",
		StorageDesc:     "Sécurisé, climatisé",
		Insurance:       "Valeur d'Assurance",
		InsStandard:     "Couverture Standard",
		InsMedium:       "Couverture Étendue",
		InsHigh:         "Couverture Premium",
	},
	Step4: TranslationStep4{
		Title:              "Détails Personnels",
		Desc:               "Où devons-nous envoyer votre devis ?",
		Salutation:         "Titre",
		Mr:                 "M.",
		Ms:                 "Mme",
		Mx:                 "Div.",
		Firstname:          "Prénom",
		Lastname:           "Nom",
		Email:              "Adresse E-mail",
		Phone:              "Numéro de Téléphone",
		PreferredContact:   "Méthode de Contact Préférée",
		ContactEmail:       "M'envoyer le devis par e-mail",
		ContactPhone:       "M'appeler pour discuter",
		ContactWhatsapp:    "Envoyer via WhatsApp",
		Remarks:            "Remarques Supplémentaires",
		RemarksPlaceholder: "ex: Piano, Coffre-fort lourd, Œuvres d'art, Escalier étroit...",
	},
}
