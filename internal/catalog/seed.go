package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ndi-assess/backend/internal/models"
)

type seedDomain struct {
	code   string
	nameEn string
	nameAr string
	descEn string
	descAr string
}

// The 14 fixed framework domains.
var seedDomains = []seedDomain{
	{"DG", "Data Governance", "حوكمة البيانات",
		"The exercise of authority and control over the management of data assets.",
		"ممارسة السلطة والسيطرة على إدارة أصول البيانات."},
	{"MCM", "Metadata and Catalog Management", "إدارة البيانات الوصفية والفهرسة",
		"Planning, implementation, and control of activities to enable access to high quality, integrated metadata.",
		"تخطيط وتنفيذ ومراقبة الأنشطة لتمكين الوصول إلى البيانات الوصفية المتكاملة عالية الجودة."},
	{"DQ", "Data Quality", "جودة البيانات",
		"Planning and implementation of quality management techniques to measure, assess, improve, and ensure the fitness of data for use.",
		"تخطيط وتنفيذ تقنيات إدارة الجودة لقياس وتقييم وتحسين وضمان ملاءمة البيانات للاستخدام."},
	{"DO", "Data Operations", "عمليات البيانات",
		"Planning, control, and support for structured data assets across the data lifecycle.",
		"تخطيط ومراقبة ودعم أصول البيانات المهيكلة عبر دورة حياة البيانات."},
	{"DCM", "Document and Content Management", "إدارة الوثائق والمحتوى",
		"Planning, implementation, and control of activities to store, protect, and access data in unstructured sources.",
		"تخطيط وتنفيذ ومراقبة الأنشطة لتخزين وحماية والوصول إلى البيانات في المصادر غير المهيكلة."},
	{"DAM", "Data Architecture and Modeling", "هيكلة البيانات والنمذجة",
		"Defining the blueprint for data assets by establishing standards and best practices.",
		"تحديد المخطط لأصول البيانات من خلال وضع المعايير وأفضل الممارسات."},
	{"DSI", "Data Sharing and Interoperability", "مشاركة البيانات والتكامل",
		"Managing processes related to data movement and consolidation inside and outside the entity.",
		"إدارة العمليات المتعلقة بنقل البيانات وتوحيدها داخل الجهة وخارجها."},
	{"RMD", "Reference and Master Data Management", "إدارة البيانات المرجعية والرئيسية",
		"Managing data for optimal consistency and quality through establishing a single point of reference.",
		"إدارة البيانات لتحقيق الاتساق والجودة المثلى من خلال إنشاء نقطة مرجعية واحدة."},
	{"BIA", "Business Intelligence and Analytics", "ذكاء الأعمال والتحليلات",
		"Planning, implementing, and controlling processes to extract value from data through analytics.",
		"تخطيط وتنفيذ ومراقبة العمليات لاستخراج القيمة من البيانات من خلال التحليلات."},
	{"DVR", "Data Value Realization", "تحقيق القيمة من البيانات",
		"Measuring and tracking the value generated from data assets and initiatives.",
		"قياس وتتبع القيمة المتولدة من أصول البيانات والمبادرات."},
	{"OD", "Open Data", "البيانات المفتوحة",
		"Making data publicly available for use and reuse by external stakeholders.",
		"إتاحة البيانات للعموم للاستخدام وإعادة الاستخدام من قبل الجهات الخارجية."},
	{"FOI", "Freedom of Information", "حرية المعلومات",
		"Ensuring public access to information held by government entities.",
		"ضمان وصول الجمهور إلى المعلومات التي تحتفظ بها الجهات الحكومية."},
	{"DC", "Data Classification", "تصنيف البيانات",
		"Categorizing data based on sensitivity and security requirements.",
		"تصنيف البيانات بناءً على متطلبات الحساسية والأمان."},
	{"PDP", "Personal Data Protection", "حماية البيانات الشخصية",
		"Protecting personal data and ensuring compliance with privacy regulations.",
		"حماية البيانات الشخصية وضمان الامتثال للوائح الخصوصية."},
}

// Three assessment perspectives instantiated per domain.
var questionTemplates = []struct {
	en string
	ar string
}{
	{"To what extent does the organization define and approve policies and plans for %s?",
		"إلى أي مدى تقوم الجهة بتحديد واعتماد السياسات والخطط الخاصة بمجال %s؟"},
	{"To what extent are %s processes implemented and operating across the organization?",
		"إلى أي مدى يتم تنفيذ وتشغيل عمليات %s على مستوى الجهة؟"},
	{"To what extent does the organization monitor, measure, and improve its %s practices?",
		"إلى أي مدى تقوم الجهة بمراقبة وقياس وتحسين ممارسات %s؟"},
}

var levelCriteria = map[int]struct {
	descEn     string
	descAr     string
	evidenceEn []string
	evidenceAr []string
}{
	0: {"No capabilities exist for this practice.",
		"لا توجد قدرات لهذه الممارسة.",
		nil, nil},
	1: {"Initial efforts are underway; practices are ad hoc and largely undocumented.",
		"الجهود الأولية قائمة؛ الممارسات غير منتظمة وغير موثقة إلى حد كبير.",
		[]string{"Draft policy or initiative documents", "Assigned ownership for the practice"},
		[]string{"مسودات السياسات أو وثائق المبادرات", "إسناد مسؤولية الممارسة"}},
	2: {"Practices are defined and documented but not consistently applied.",
		"الممارسات محددة وموثقة لكنها لا تُطبق بشكل متسق.",
		[]string{"Approved policy and procedure documents", "Defined roles and responsibilities"},
		[]string{"السياسات والإجراءات المعتمدة", "الأدوار والمسؤوليات المحددة"}},
	3: {"Documented practices are activated and applied across the organization.",
		"الممارسات الموثقة مفعلة ومطبقة على مستوى الجهة.",
		[]string{"Implementation records and operating procedures", "Training and awareness records"},
		[]string{"سجلات التنفيذ وإجراءات التشغيل", "سجلات التدريب والتوعية"}},
	4: {"Practices are managed with defined performance indicators and regular reviews.",
		"تتم إدارة الممارسات بمؤشرات أداء محددة ومراجعات دورية.",
		[]string{"KPI dashboards and review minutes", "Audit and compliance reports"},
		[]string{"لوحات مؤشرات الأداء ومحاضر المراجعة", "تقارير التدقيق والامتثال"}},
	5: {"Practices are continuously improved and recognized as leading across the sector.",
		"يتم تحسين الممارسات باستمرار وتعد رائدة على مستوى القطاع.",
		[]string{"Continuous improvement records", "External benchmarks or recognition"},
		[]string{"سجلات التحسين المستمر", "مقارنات معيارية أو اعترافات خارجية"}},
}

// Seed loads the reference catalog if the domains table is empty.
// Idempotent: a populated catalog is left untouched.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM domains`).Scan(&count); err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if count > 0 {
		log.Printf("[catalog] seed skipped, %d domains present", count)
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for i, sd := range seedDomains {
		domainID := uuid.New()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO domains (id, code, name_en, name_ar, description_en, description_ar, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			domainID, sd.code, sd.nameEn, sd.nameAr, sd.descEn, sd.descAr, i+1,
		); err != nil {
			return fmt.Errorf("seed domain %s: %w", sd.code, err)
		}

		for n, tmpl := range questionTemplates {
			questionID := uuid.New()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO questions (id, domain_id, code, question_en, question_ar, sort_order)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				questionID, domainID, fmt.Sprintf("%s-%d", sd.code, n+1),
				fmt.Sprintf(tmpl.en, sd.nameEn), fmt.Sprintf(tmpl.ar, sd.nameAr), n+1,
			); err != nil {
				return fmt.Errorf("seed question %s-%d: %w", sd.code, n+1, err)
			}

			for level := models.MinMaturityLevel; level <= models.MaxMaturityLevel; level++ {
				criteria := levelCriteria[level]
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO maturity_levels
					 (id, question_id, level, name_en, name_ar, description_en, description_ar,
					  acceptance_evidence_en, acceptance_evidence_ar)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
					uuid.New(), questionID, level,
					models.LevelNameEn(level), models.LevelNameAr(level),
					criteria.descEn, criteria.descAr,
					pq.Array(criteria.evidenceEn), pq.Array(criteria.evidenceAr),
				); err != nil {
					return fmt.Errorf("seed level %d for %s-%d: %w", level, sd.code, n+1, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Printf("[catalog] seeded %d domains, %d questions",
		len(seedDomains), len(seedDomains)*len(questionTemplates))
	return nil
}
