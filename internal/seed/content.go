// Package seed holds the built-in content dataset. It is the hydration
// fallback for entities a persistence backend has never stored, and the
// payload of cmd/seed for a fresh remote database.
package seed

import "bimsite/internal/domain/models"

// ProjectInfo returns the default project singleton.
func ProjectInfo() models.ProjectInfo {
	return models.ProjectInfo{
		Name:        "金融岛站周边一体化项目",
		Description: "本项目旨在打造集交通、商业、景观于一体的城市新地标。通过全生命周期的BIM技术应用，实现了从设计优化、施工模拟到智慧运维的数字化转型，显著提升了工程质量与管理效率。",
		Location:    "金融岛核心区域",
		TotalArea:   "150,000 m²",
		Investment:  "25 亿 RMB",
		NavTitle:    "金融岛",
		NavSubtitle: "BIM",
	}
}

// AIConfig returns the default chat-relay configuration. The API key is
// intentionally empty; the relay refuses to call out until an admin sets one.
func AIConfig() models.AIConfig {
	return models.AIConfig{
		Provider:     "deepseek",
		ProviderName: "DeepSeek (深度求索)",
		APIKey:       "",
		BaseURL:      "https://api.deepseek.com",
		Model:        "deepseek-chat",
		SystemPrompt: `你是一个专业的BIM项目咨询助手，服务于"金融岛站周边一体化项目"。
请根据以下项目背景信息回答用户的问题。
如果是关于项目团队、亮点、成效的问题，请严格基于上下文回答。
如果用户问候，请热情专业地回应。
请使用中文回答，保持简洁（100字以内），除非用户要求详细解释。`,
	}
}

// HeroVideos returns the default hero carousel.
func HeroVideos() []models.HeroVideo {
	return []models.HeroVideo{
		{
			ID:       "v1",
			Title:    "项目整体漫游展示",
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			CoverURL: "https://picsum.photos/id/122/600/400",
		},
		{
			ID:       "v2",
			Title:    "地下空间管线综合",
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			CoverURL: "https://picsum.photos/id/133/600/400",
		},
		{
			ID:       "v3",
			Title:    "主体结构施工模拟",
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			CoverURL: "https://picsum.photos/id/104/600/400",
		},
		{
			ID:       "v4",
			Title:    "智慧工地平台演示",
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			CoverURL: "https://picsum.photos/id/142/600/400",
		},
	}
}

// Highlights returns the default featured applications.
func Highlights() []models.Highlight {
	return []models.Highlight{
		{
			ID:              "1",
			Title:           "复杂节点深化设计",
			Summary:         "利用BIM技术对钢结构与混凝土连接节点进行三维可视化深化，解决碰撞问题。",
			FullDescription: "针对金融岛站地下空间复杂的管线综合与结构节点，项目团队利用Revit和Tekla软件进行了深度建模。通过三维可视化，提前发现了500+处硬碰撞，并优化了钢筋排布，确保了现场施工的一次成型率。主要成果包括节点详图自动化生成及三维技术交底视频。",
			Thumbnail:       "https://picsum.photos/id/101/600/400",
			Images:          []string{"https://picsum.photos/id/102/800/600", "https://picsum.photos/id/103/800/600"},
			Files: []models.ProjectFile{
				{ID: "f1", Name: "节点深化报告.pdf", Type: "pdf", Size: "12MB", URL: "#"},
				{ID: "f2", Name: "关键节点模型.rvt", Type: "rvt", Size: "45MB", URL: "#"},
			},
			TechnicalSpecs: map[string]string{
				"软件平台": "Revit 2023, Tekla Structures",
				"碰撞检测": "Navisworks Manage",
				"深化精度": "LOD 400",
			},
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		},
		{
			ID:              "2",
			Title:           "4D施工进度模拟",
			Summary:         "结合时间维度，模拟主要施工工序，优化工期安排与资源配置。",
			FullDescription: "项目采用Fuzor软件进行4D施工模拟，将Project进度计划与BIM模型关联。重点模拟了深基坑开挖、大型钢结构吊装等关键路径。通过模拟，优化了场地布置，减少了大型机械的闲置时间，不仅缩短了工期20天，还显著降低了施工安全风险。",
			Thumbnail:       "https://picsum.photos/id/104/600/400",
			Images:          []string{"https://picsum.photos/id/106/800/600", "https://picsum.photos/id/107/800/600"},
			Files: []models.ProjectFile{
				{ID: "f3", Name: "施工模拟动画.mp4", Type: "jpg", Size: "120MB", URL: "#"},
				{ID: "f4", Name: "进度优化对比表.xlsx", Type: "doc", Size: "1.5MB", URL: "#"},
			},
			TechnicalSpecs: map[string]string{
				"模拟软件": "Fuzor, Synchro 4D",
				"关键路径": "基坑支护, 主体结构封顶",
			},
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		},
		{
			ID:              "3",
			Title:           "机电管线综合优化",
			Summary:         "实现净高控制与管线排布的最优解，提升地下空间使用品质。",
			FullDescription: "地下商业区管线错综复杂。团队利用BIM技术进行MEC（机电综合）分析，重点解决了走廊净高不足的问题。通过调整风管截面、优化桥架走向，最终将平均净高提升了15cm，极大地改善了空间体验，并输出了综合管线图（CSD）和综合留洞图（CBWD）。",
			Thumbnail:       "https://picsum.photos/id/133/600/400",
			Images:          []string{"https://picsum.photos/id/134/800/600"},
			Files: []models.ProjectFile{
				{ID: "f5", Name: "机电综合管线图.dwg", Type: "dwg", Size: "8MB", URL: "#"},
			},
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		},
		{
			ID:              "4",
			Title:           "智慧工地集成平台",
			Summary:         "集成BIM、物联网(IoT)数据，实现现场人员、物料、环境的实时监控。",
			FullDescription: "开发了基于Web的BIM+GIS智慧工地管理平台。集成塔吊监测、环境监测、劳务实名制系统。管理人员可通过大屏实时查看现场情况，实现了数据的互联互通，打破了信息孤岛，为项目决策提供了有力的数据支撑。",
			Thumbnail:       "https://picsum.photos/id/142/600/400",
			Images:          []string{"https://picsum.photos/id/143/800/600"},
			Files: []models.ProjectFile{
				{ID: "f6", Name: "平台操作手册.pdf", Type: "pdf", Size: "5MB", URL: "#"},
			},
			VideoURL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		},
		{
			ID:              "5",
			Title:           "数字化运维交付",
			Summary:         "构建数字孪生底座，为后期物业管理提供包含丰富信息的资产模型。",
			FullDescription: "项目不仅关注建设期，更着眼于运营期。建立了COBie标准的数据交付体系，将设备厂家、保修期、维护手册等信息挂接至BIM模型。交付的运维模型直接对接IBMS系统，实现了设施设备的快速定位与智能化维护。",
			Thumbnail:       "https://picsum.photos/id/180/600/400",
			Images:          []string{"https://picsum.photos/id/181/800/600"},
			Files:           []models.ProjectFile{},
		},
		{
			ID:              "6",
			Title:           "异形幕墙参数化设计",
			Summary:         "运用Rhino+Grasshopper对双曲面幕墙进行板块划分与优化。",
			FullDescription: "金融岛中心建筑拥有独特的流线型外观。利用参数化设计工具，对数千块幕墙玻璃进行逻辑划分，最大限度地减少了异形板数量，降低了加工成本，并确保了建筑外观的完美呈现。",
			Thumbnail:       "https://picsum.photos/id/192/600/400",
			Images:          []string{"https://picsum.photos/id/195/800/600"},
			Files: []models.ProjectFile{
				{ID: "f7", Name: "幕墙展开图.dwg", Type: "dwg", Size: "15MB", URL: "#"},
			},
		},
		{
			ID:              "7",
			Title:           "无人机倾斜摄影实景建模",
			Summary:         "快速获取周边环境现状，辅助总平面布置与交通疏解方案制定。",
			FullDescription: "项目团队利用无人机搭载高清相机，对施工现场及周边2平方公里范围进行了倾斜摄影。通过ContextCapture软件处理，生成了高精度的三维实景模型。该模型被广泛应用于前期的场地规划、临建布置以及施工期间的土方平衡计算，确保了施工方案与现场实际的精准贴合。",
			Thumbnail:       "https://picsum.photos/id/238/600/400",
			Images:          []string{"https://picsum.photos/id/239/800/600"},
			Files:           []models.ProjectFile{},
		},
		{
			ID:              "8",
			Title:           "VR安全教育体验",
			Summary:         "沉浸式虚拟现实体验，提升工人的安全意识与应急处置能力。",
			FullDescription: "为了提高工人的安全意识，项目部建立了VR安全教育体验馆。基于BIM模型制作了高空坠落、物体打击、火灾逃生等10余个虚拟场景。工人佩戴VR眼镜即可身临其境地体验违规操作带来的严重后果，这种体验式的教育方式比传统的说教更为深刻有效，显著降低了现场的安全事故率。",
			Thumbnail:       "https://picsum.photos/id/251/600/400",
			Images:          []string{"https://picsum.photos/id/252/800/600"},
			Files:           []models.ProjectFile{},
		},
	}
}

// Achievements returns the default awards, publications and visits.
func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          "a1",
			Title:       "全球工程建设业卓越BIM大赛 最佳实践奖",
			Type:        models.AchievementAward,
			Date:        "2023-11",
			Description: "表彰项目在多专业协同与施工模拟方面的杰出应用。",
			ImageURL:    "https://picsum.photos/id/200/400/300",
		},
		{
			ID:          "a4",
			Title:       "国家优质工程奖",
			Type:        models.AchievementAward,
			Date:        "2024-01",
			Description: "荣获工程建设质量方面的最高荣誉，肯定了数字化建造的质量管控成果。",
			ImageURL:    "https://picsum.photos/id/203/400/300",
		},
		{
			ID:          "a5",
			Title:       "建设工程BIM大赛 一等奖",
			Type:        models.AchievementAward,
			Date:        "2023-06",
			Description: "在复杂节点深化设计专项比赛中脱颖而出。",
			ImageURL:    "https://picsum.photos/id/204/400/300",
		},
		{
			ID:          "a2",
			Title:       "《土木建筑工程信息技术》期刊发表",
			Type:        models.AchievementPublication,
			Date:        "2024-02",
			Description: "发表论文《复杂城市综合体BIM全过程应用实践与探索》。",
			ImageURL:    "https://picsum.photos/id/201/400/300",
		},
		{
			ID:          "a6",
			Title:       "《施工技术》核心期刊收录",
			Type:        models.AchievementPublication,
			Date:        "2023-12",
			Description: "论文《基于BIM+GIS的智慧工地管理平台开发与应用》获行业高度关注。",
			ImageURL:    "https://picsum.photos/id/206/400/300",
		},
		{
			ID:          "a7",
			Title:       "国际BIM学术研讨会 特邀报告",
			Type:        models.AchievementPublication,
			Date:        "2023-10",
			Description: "项目总工受邀分享数字化转型经验，获得与会专家一致好评。",
			ImageURL:    "https://picsum.photos/id/208/400/300",
		},
		{
			ID:          "a3",
			Title:       "住建部专家组莅临观摩指导",
			Type:        models.AchievementVisit,
			Date:        "2023-09",
			Description: "专家组高度评价了项目的数字化管理水平。",
			ImageURL:    "https://picsum.photos/id/202/400/300",
		},
		{
			ID:          "a8",
			Title:       "省市领导现场调研",
			Type:        models.AchievementVisit,
			Date:        "2023-11",
			Description: "重点考察了智慧工地指挥中心，对安全文明施工给予肯定。",
			ImageURL:    "https://picsum.photos/id/209/400/300",
		},
		{
			ID:          "a9",
			Title:       "高校师生研学交流",
			Type:        models.AchievementVisit,
			Date:        "2023-05",
			Description: "接待某建筑大学师生团，开展BIM技术产学研交流活动。",
			ImageURL:    "https://picsum.photos/id/211/400/300",
		},
	}
}

// TeamMembers returns the default org chart.
func TeamMembers() []models.TeamMember {
	return []models.TeamMember{
		{ID: "t1", Name: "张伟", Role: "项目经理", Contact: "138-0000-1111"},
		{ID: "t2", Name: "李娜", Role: "BIM总监", Contact: "139-1111-2222", ParentID: "t1"},
		{ID: "t3", Name: "王强", Role: "土建BIM负责人", Contact: "137-2222-3333", ParentID: "t2"},
		{ID: "t4", Name: "赵敏", Role: "机电BIM负责人", Contact: "136-3333-4444", ParentID: "t2"},
		{ID: "t5", Name: "陈诚", Role: "平台开发工程师", Contact: "135-4444-5555", ParentID: "t2"},
	}
}

// LocationSlides returns the default location carousel.
func LocationSlides() []models.LocationSlide {
	return []models.LocationSlide{
		{
			ID:          "1",
			Image:       "https://picsum.photos/id/1053/800/400?grayscale",
			Title:       "金融岛核心区",
			Description: "位于城市新中心，链接主要商业动脉",
			IconName:    "MapPin",
		},
		{
			ID:          "2",
			Image:       "https://picsum.photos/id/122/800/400",
			Title:       "立体交通网络",
			Description: "地铁、公交与地下环路无缝衔接",
			IconName:    "Layers",
		},
		{
			ID:          "3",
			Image:       "https://picsum.photos/id/193/800/400",
			Title:       "景观资源分布",
			Description: "滨河公园与城市绿带环绕",
			IconName:    "User",
		},
	}
}

// SiteSlides returns the default construction-site carousel.
func SiteSlides() []models.SiteSlide {
	return []models.SiteSlide{
		{
			ID:    "1",
			Image: "https://picsum.photos/id/250/800/400",
			Tag:   "施工进度",
			Title: "底板钢筋绑扎",
			Desc:  "采用BIM技术优化钢筋排布，施工效率提升15%",
		},
		{
			ID:    "2",
			Image: "https://picsum.photos/id/175/800/400",
			Tag:   "现场实况",
			Title: "土方作业阶段",
			Desc:  "基坑开挖深度达24米，土方外运有序进行",
		},
		{
			ID:    "3",
			Image: "https://picsum.photos/id/296/800/400",
			Tag:   "智慧监管",
			Title: "AI视频监控",
			Desc:  "全覆盖监控系统，保障现场安全文明施工",
		},
	}
}

// ParticipatingUnits returns the default footer logo wall, one unit per
// category.
func ParticipatingUnits() []models.ParticipatingUnit {
	return []models.ParticipatingUnit{
		{ID: "u1", Category: models.UnitOwner, Name: "金融岛建设发展有限公司", Logo: ""},
		{ID: "u2", Category: models.UnitDesigner, Name: "城市综合设计研究院", Logo: ""},
		{ID: "u3", Category: models.UnitCoordinator, Name: "工程总控咨询有限公司", Logo: ""},
		{ID: "u4", Category: models.UnitContractor, Name: "建工集团第一工程局", Logo: ""},
		{ID: "u5", Category: models.UnitSupervisor, Name: "建设工程监理有限公司", Logo: ""},
	}
}

// Snapshot bundles the full default dataset.
func Snapshot() *models.Snapshot {
	info := ProjectInfo()
	ai := AIConfig()
	return &models.Snapshot{
		ProjectInfo:        &info,
		Highlights:         Highlights(),
		Achievements:       Achievements(),
		TeamMembers:        TeamMembers(),
		LocationSlides:     LocationSlides(),
		SiteSlides:         SiteSlides(),
		HeroVideos:         HeroVideos(),
		ParticipatingUnits: ParticipatingUnits(),
		AIConfig:           &ai,
	}
}
