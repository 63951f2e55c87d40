package constant

const (
	// AssistantSystemInstructionV1 is sent as the system instruction on every
	// call. The JSON keys must match contract.Schema.
	AssistantSystemInstructionV1 = `# ROL
Sen "Akademik Asistan Pro" adında, üst düzey bir akademik editör ve içerik üreticisisin. İki çalışma modun var:

1. **İÇERİK ÜRETİMİ (DRAFTING):** Verilen konu hakkında sıfırdan, APA 7 standartlarına uygun, akademik dille yazılmış ve Giriş, Gelişme, Sonuç bölümlerine ayrılmış bir makale taslağı oluşturursun. Bu modda bulgu listesi boş kalır.

2. **METİN ANALİZİ (ANALYSIS):** Verilen metni seçili "Ajanlar" (kriterler) doğrultusunda inceler, sorunları raporlar ve metni yeniden yazarsın.

# AJAN YETENEKLERİ (yalnızca Analiz modunda)
- **Resmi Dil Ajanı:** Pasif ses, nesnellik ve akademik ton kontrolü.
- **Sözcük Ekonomisi Ajanı:** Gereksiz sözcüklerin temizlenmesi.
- **Akış Kontrol Ajanı:** Bağlaçlar ve mantıksal geçişler.
- **APA 7 Ajanı:** Kaynakça ve atıf kontrolü.

# ÇIKTI FORMATI (JSON ZORUNLU)
Her zaman YALNIZCA aşağıdaki yapıda JSON döndür:

{
  "rewrittenText": "Üretilen veya düzenlenen metnin son hali.",
  "findings": [
    {
      "category": "Hata tipi (örn: APA Eksikliği)",
      "issueSummary": "Kısa hata tanımı",
      "originalFragment": "Hatalı orijinal parça",
      "suggestedFragment": "Öneri / düzeltme",
      "locationHint": "Konum"
    }
  ]
}`

	DraftingUserPromptTemplateV1 = `GÖREV: İÇERİK ÜRETİMİ (DRAFTING)

KONU: %s

TALİMAT: Yukarıdaki konu hakkında akademik literatüre uygun, nesnel ve profesyonel bir makale taslağı yaz. Başlıklar kullan. Metni 'rewrittenText' alanına yaz. 'findings' dizisini boş bırak.`

	AnalysisUserPromptTemplateV1 = `GÖREV: METİN ANALİZİ VE DÜZENLEME (ANALYSIS)

METİN: %s

AKTİF AJANLAR: %s

TALİMAT: Metni yukarıdaki ajanların kriterlerine göre analiz et ve yeniden düzenle. İyileştirilmiş metni 'rewrittenText' alanına, bulunan sorunları 'findings' dizisine yaz.`

	// ActiveAgentSeparator joins enabled agent labels.
	ActiveAgentSeparator = ", "
	// AllStandardChecksFallback replaces an empty agent list.
	AllStandardChecksFallback = "Tüm Standart Kontroller"
)

const (
	ExportFilenameDrafting = "akademik_taslak.txt"
	ExportFilenameAnalysis = "duzenlenmis_metin.txt"
)

const (
	UserMessageConfiguration = "Yapay zeka servisi yapılandırılmamış. Lütfen API anahtarınızı kontrol edin."
	UserMessageProcessing    = "İşlem sırasında bir hata oluştu. Lütfen tekrar deneyin."
	UserMessageEmptyInput    = "Lütfen işlenecek bir metin veya konu girin."
	UserMessageInFlight      = "Önceki isteğiniz hâlâ işleniyor. Lütfen bekleyin."
	UserMessageInputTooLong  = "Metin çok uzun. Lütfen daha kısa bir metin girin."
	UserMessageInvalidMode   = "Geçersiz çalışma modu."
)

// Agent identifiers of the default catalog.
const (
	AgentIdFormal      = "formal"
	AgentIdConciseness = "conciseness"
	AgentIdFlow        = "flow"
	AgentIdAPA         = "apa"
)
