// Package fallback bundles the default marketing content served when the
// backing store is empty and substituted by the API client when the remote
// service is unreachable. The seed tool loads the same records into Mongo so
// a fresh deployment and an offline client agree on what the site shows.
package fallback

import "corus-backend/internal/models"

func Menus() []models.MenuGroup {
	return []models.MenuGroup{
		{
			Slug:  "solutions-menu",
			Title: "Solutions",
			Items: []models.MenuItem{
				{Label: "Software Development", Href: "/solutions/software-development", Slug: "software-development"},
				{Label: "Web Development", Href: "/solutions/web-development", Slug: "web-development"},
				{Label: "App Development", Href: "/solutions/app-development", Slug: "app-development"},
				{Label: "Data Analytics", Href: "/solutions/data-analytics", Slug: "data-analytics"},
				{Label: "Digital Marketing", Href: "/solutions/digital-marketing", Slug: "digital-marketing"},
				{Label: "SEO & AI Optimization", Href: "/solutions/seo-ai-optimization", Slug: "seo-ai-optimization"},
				{Label: "UI/UX Design", Href: "/solutions/ui-ux-design", Slug: "ui-ux-design"},
				{Label: "Graphics Design", Href: "/solutions/graphics-design", Slug: "graphics-design"},
			},
		},
		{
			Slug:  "industries-menu",
			Title: "Industries",
			Items: []models.MenuItem{
				{Label: "E-Commerce & Retail", Href: "/industries/e-commerce-retail", Slug: "e-commerce-retail"},
				{Label: "Healthcare & Pharmaceuticals", Href: "/industries/healthcare-pharmaceuticals", Slug: "healthcare-pharmaceuticals"},
				{Label: "Finance & Banking", Href: "/industries/finance-banking", Slug: "finance-banking"},
				{Label: "Education & E-Learning", Href: "/industries/education-e-learning", Slug: "education-e-learning"},
				{Label: "Real Estate & Construction", Href: "/industries/real-estate-construction", Slug: "real-estate-construction"},
				{Label: "Travel & Hospitality", Href: "/industries/travel-hospitality", Slug: "travel-hospitality"},
				{Label: "Manufacturing & Supply Chain", Href: "/industries/manufacturing-supply-chain", Slug: "manufacturing-supply-chain"},
				{Label: "Entertainment & Media", Href: "/industries/entertainment-media", Slug: "entertainment-media"},
				{Label: "Logistics & Transportation", Href: "/industries/logistics-transportation", Slug: "logistics-transportation"},
				{Label: "Government & Public Sector", Href: "/industries/government-public-sector", Slug: "government-public-sector"},
			},
		},
	}
}

func Solutions() []models.Solution {
	return []models.Solution{
		{
			Slug:        "software-development",
			Title:       "Software Development",
			Subtitle:    "Custom Software Solutions Built to Scale Your Business",
			Description: "We design and develop powerful, reliable, and scalable software solutions that align perfectly with your business goals. From enterprise-grade systems to specialized tools, we focus on performance, security, and user experience — delivering software that grows with your company. Whether you need a SaaS platform, internal ERP system, or custom automation solution, we help transform your ideas into robust digital products.",
			Workflow: []models.SolutionStep{
				{Title: "Requirements Analysis", Description: "We begin by deeply understanding your business objectives, user needs, and technical challenges. Our discovery sessions define a clear roadmap that aligns software goals with long-term business success."},
				{Title: "System Design & Architecture", Description: "We architect the system for scalability, flexibility, and performance. From database design to API structure, we ensure your foundation supports growth and future integrations."},
				{Title: "Agile Development", Description: "Our development process is iterative, transparent, and collaborative. We build, test, and refine in short sprints — ensuring rapid progress and continuous feedback."},
				{Title: "Quality Assurance & Testing", Description: "Every line of code is tested rigorously for functionality, security, and performance using both manual and automated testing methods."},
				{Title: "Deployment & Maintenance", Description: "We deploy your application with zero downtime and provide ongoing maintenance, monitoring, and feature enhancements."},
			},
			Expertise: []models.SolutionStep{
				{Title: "Custom Software Development", Description: "End-to-end development tailored to your business logic and operations."},
				{Title: "SaaS Product Development", Description: "We build scalable multi-tenant SaaS platforms with secure user management and analytics."},
				{Title: "Enterprise Software Solutions", Description: "ERP, CRM, HRM, and custom enterprise apps for digital transformation."},
				{Title: "API Development & Integration", Description: "RESTful and GraphQL APIs built for high performance and seamless interoperability."},
				{Title: "Automation & Workflow Systems", Description: "We design tools that automate repetitive tasks and streamline business processes."},
				{Title: "Cloud-Native Applications", Description: "We leverage AWS, Azure, or Google Cloud for scalable and secure deployments."},
			},
			Deliverables: []models.Deliverable{
				{Item: "Fully Functional Software", Description: "Custom-built application ready for production use."},
				{Item: "Scalable Architecture", Description: "Modular, future-proof systems designed for growth."},
				{Item: "Documentation & Training", Description: "Comprehensive technical and user documentation with training materials."},
				{Item: "Deployment & DevOps Support", Description: "CI/CD pipelines, monitoring, and cloud setup."},
				{Item: "Ongoing Maintenance", Description: "Continuous updates, performance tuning, and bug fixes."},
			},
		},
		{
			Slug:        "web-development",
			Title:       "Web Development",
			Subtitle:    "Build Websites and Applications That Power Your Growth",
			Description: "Your website isn't just a digital brochure — it's the hub of your brand, the first touchpoint for your customers, and a powerful tool to drive growth. Our web development services cover everything from sleek front-end design to complex back-end systems, ensuring you get a solution that's fast, scalable, and tailored to your business. Whether you need a responsive website, a custom web application, or a full e-commerce platform, we combine design, functionality, and performance to deliver results that last.",
			Workflow: []models.SolutionStep{
				{Title: "Discovery & Strategy", Description: "We don't just build websites — we build growth platforms. In this stage, we take the time to understand your business goals, industry landscape, competitors, and target audience behavior. By combining market insights with your vision, we create a strategic roadmap that ensures your website isn't just functional, but also a powerful driver of leads, sales, and brand trust."},
				{Title: "Design & Prototyping", Description: "Great design is about more than aesthetics — it's about usability, credibility, and conversions. Our designers create wireframes, mockups, and clickable prototypes so you can experience your site before development begins."},
				{Title: "Front-End & Back-End Development", Description: "Our developers transform prototypes into a live platform with intuitive, mobile-friendly interfaces on the front end and robust, scalable systems on the back end. We ensure your site is secure, high-performing, and built to grow with your business."},
				{Title: "Testing & Quality Assurance", Description: "We put your site through rigorous multi-device, cross-browser, and real-world scenario testing to guarantee flawless functionality, speed, and security."},
				{Title: "Launch & Ongoing Support", Description: "We ensure a smooth rollout, monitor performance, and provide ongoing updates, maintenance, and optimization to keep your site competitive."},
			},
			Expertise: []models.SolutionStep{
				{Title: "Front-End Development", Description: "We design and code responsive interfaces using React, Angular, or Vue."},
				{Title: "Back-End Development", Description: "We build secure, scalable server-side logic using Node.js, Django, or Laravel."},
				{Title: "E-Commerce Development", Description: "We create conversion-focused online stores with payment gateways and inventory systems."},
				{Title: "Web Application Development", Description: "We build dynamic web apps like dashboards, SaaS, and portals optimized for performance."},
				{Title: "LMS Development", Description: "We create e-learning systems for education and corporate training."},
				{Title: "CMS Development", Description: "Custom or platform-based CMS solutions for easy content management."},
			},
			Deliverables: []models.Deliverable{
				{Item: "Fully Responsive Website", Description: "Works flawlessly across all devices."},
				{Item: "Scalable Architecture", Description: "Built to grow with your business."},
				{Item: "Optimized Performance", Description: "Fast load times and SEO-friendly structures."},
				{Item: "CMS Integration", Description: "Manage your content easily with WordPress, Drupal, or custom CMS."},
				{Item: "Ongoing Support", Description: "Continuous updates and feature rollouts."},
			},
		},
		{
			Slug:        "digital-marketing",
			Title:       "Digital Marketing",
			Subtitle:    "Drive Growth, Visibility, and Conversions That Matter",
			Description: "Our digital marketing solutions are designed to increase your brand's visibility, generate leads, and boost sales. From SEO and social media marketing to paid campaigns, we create ROI-focused strategies tailored to your goals.",
			Workflow: []models.SolutionStep{
				{Title: "Discovery & Market Research", Description: "We analyze your target audience, competitors, and brand identity to create data-backed strategies."},
				{Title: "Strategy & Campaign Design", Description: "We craft custom multi-channel roadmaps that combine SEO, ads, and social campaigns."},
				{Title: "Multi-Channel Execution", Description: "We launch campaigns across Google, Facebook, LinkedIn, and email marketing platforms."},
				{Title: "Monitoring & Optimization", Description: "We track, test, and refine every campaign for maximum performance."},
				{Title: "Reporting & Growth Insights", Description: "Transparent, easy-to-understand reports with actionable insights."},
			},
			Expertise: []models.SolutionStep{
				{Title: "Social Media Marketing", Description: "Engage audiences and build communities across major platforms."},
				{Title: "Paid Advertising", Description: "Data-driven PPC campaigns for maximum ROI."},
				{Title: "Content Marketing", Description: "SEO-optimized blogs, videos, and infographics that drive conversions."},
				{Title: "Email Marketing", Description: "Personalized campaigns and automation workflows for retention."},
				{Title: "Influencer & Affiliate Marketing", Description: "Collaborate with trusted voices to expand reach and credibility."},
				{Title: "Analytics & Optimization", Description: "Performance tracking and continuous improvement based on data insights."},
			},
			Deliverables: []models.Deliverable{
				{Item: "Marketing Strategy", Description: "A custom, multi-platform growth plan."},
				{Item: "High-Performance Campaigns", Description: "Optimized ad campaigns across search and social media."},
				{Item: "Content Creation", Description: "Engaging blogs, visuals, and videos."},
				{Item: "Social Media Management", Description: "Posting, community engagement, and growth."},
				{Item: "Email Marketing", Description: "Automated workflows and newsletters."},
				{Item: "Transparent Reporting", Description: "Monthly analytics and actionable insights."},
			},
		},
	}
}

func Industries() []models.Industry {
	return []models.Industry{
		{
			Slug:     "e-commerce-retail",
			Title:    "E-Commerce & Retail",
			Overview: "Where every click is a potential customer. The retail world has shifted from crowded shopping malls to digital storefronts. Customers no longer just 'buy'—they browse, compare, review, and expect seamless experiences. In today's competitive e-commerce market, the difference between a store that thrives and one that disappears often comes down to digital presence and customer experience.",
			Challenges: []models.SolutionStep{
				{Title: "Technology Challenges", Description: "Shoppers expect fast-loading, mobile-friendly websites with smooth checkouts."},
				{Title: "Personalization Demands", Description: "Personalized recommendations powered by data analytics drive more sales."},
				{Title: "Marketing Competition", Description: "Digital ads, SEO, and social media campaigns determine whether customers find you or your competitor."},
			},
			Solutions: []models.SolutionStep{
				{Title: "Web Development", Description: "Modern, scalable e-commerce websites with flawless checkout experiences and secure payment gateways."},
				{Title: "Digital Marketing & SEO", Description: "Attract new customers with Google-first visibility, run highly targeted ad campaigns, and retarget existing shoppers."},
				{Title: "Data Analytics & BI", Description: "Understand buying behavior, optimize pricing, and predict future sales trends."},
			},
		},
		{
			Slug:     "healthcare-pharmaceuticals",
			Title:    "Healthcare & Pharmaceuticals",
			Overview: "Because in healthcare, trust and efficiency save lives. The healthcare industry is under immense pressure: patients demand convenience, doctors need efficiency, and regulations require compliance. Whether it's a hospital, a diagnostic lab, or a pharma company, modern technology isn't optional anymore—it's the backbone of better care and better business.",
			Challenges: []models.SolutionStep{
				{Title: "Digital Experience", Description: "Patients want online appointment booking, telemedicine, and digital access to records."},
				{Title: "Data Security", Description: "Healthcare providers need secure platforms that protect sensitive data."},
				{Title: "Data Insights", Description: "Pharmaceutical companies benefit from data-driven insights into drug demand and distribution."},
			},
			Solutions: []models.SolutionStep{
				{Title: "Web Development", Description: "HIPAA-compliant patient portals, telemedicine apps, and hospital management systems."},
				{Title: "SEO & Digital Marketing", Description: "Increase visibility for clinics and wellness products, ensuring patients find trusted providers."},
				{Title: "Data Engineering & Analytics", Description: "Transform patient and research data into actionable insights for better outcomes."},
			},
		},
		{
			Slug:     "finance-banking",
			Title:    "Finance & Banking",
			Overview: "In finance, security and speed mean everything. The financial industry is evolving faster than ever—customers now expect instant transactions, mobile banking, and crystal-clear transparency. Traditional systems are giving way to smart, data-driven experiences.",
			Challenges: []models.SolutionStep{
				{Title: "Security & Speed", Description: "Customers want secure mobile banking apps that work 24/7."},
				{Title: "Data Transparency", Description: "Investors demand real-time dashboards to track market changes."},
				{Title: "Fraud Prevention", Description: "AI-driven fraud detection protects institutions and clients alike."},
			},
			Solutions: []models.SolutionStep{
				{Title: "Web Development", Description: "Secure online banking portals and custom fintech apps."},
				{Title: "Digital Marketing", Description: "Build brand trust through campaigns that showcase safety, speed, and reliability."},
				{Title: "Data Engineering & BI", Description: "Fraud detection systems, predictive financial analytics, and automated reporting dashboards."},
			},
		},
	}
}

func Blogs() []models.Blog {
	return []models.Blog{
		{
			Slug:    "future-of-web-development",
			Title:   "The Future of Web Development: 2025 and Beyond",
			Excerpt: "Explore the next generation of web technologies — from AI-driven development to hyper-personalized digital experiences shaping tomorrow's internet.",
			Content: `The landscape of web development is undergoing a profound transformation as we move into 2025 and beyond. Modern websites are no longer static platforms; they are intelligent, adaptive systems designed to deliver highly personalized experiences. Artificial intelligence is playing a central role, assisting developers with code generation, performance optimization, accessibility compliance, and automated testing.

Frameworks such as Next.js, Astro, and Remix are redefining how applications are built by emphasizing performance, server-side rendering, and edge computing. The rise of headless architectures and API-first development has made it easier for businesses to scale and integrate across multiple platforms, from web to mobile to IoT devices.

Another significant shift is the growing importance of web performance and sustainability. Faster load times, reduced energy consumption, and optimized assets are no longer optional—they are business requirements. Additionally, security and privacy are becoming integral parts of the development process, with stricter data regulations shaping architectural decisions.

As web development evolves, successful teams will be those who combine technical excellence with strategic thinking. The future belongs to developers who embrace continuous learning, automation, and user-centric design to build digital experiences that are not only functional, but truly impactful.`,
			Author:   "Apu Debashish",
			Category: "Technology",
			Status:   models.BlogStatusPublished,
			Tags:     []string{"Web Development", "AI", "Innovation"},
			ReadTime: 6,
			Image:    "/images/blogs/future-web-dev.jpeg",
		},
		{
			Slug:    "why-ui-ux-matters",
			Title:   "Why UI/UX Design Defines Digital Success in 2025",
			Excerpt: "Design goes beyond aesthetics — it's the bridge between technology and human emotion. Discover how thoughtful UX transforms brands into experiences.",
			Content: `In 2025, UI/UX design has become a defining factor in digital success. Users are no longer impressed by functionality alone; they expect seamless, intuitive, and emotionally engaging experiences across every touchpoint. A well-designed interface builds trust, reduces friction, and guides users effortlessly toward their goals.

Modern UX design focuses heavily on user behavior, accessibility, and inclusivity. Designers rely on data-driven insights, usability testing, and behavioral analytics to create interfaces that feel natural and responsive. Micro-interactions, motion design, and thoughtful typography now play a crucial role in shaping how users perceive a brand.

Equally important is the alignment between UI/UX design and business objectives. A carefully crafted user journey can significantly improve conversion rates, retention, and customer satisfaction. In competitive markets, companies that invest in UX research and design strategy consistently outperform those that treat design as an afterthought.

Ultimately, UI/UX design is about empathy. By understanding user needs and expectations, organizations can create digital products that are not only beautiful but meaningful. In a world of endless choices, exceptional user experience is what turns visitors into loyal customers.`,
			Author:   "Corus Design Team",
			Category: "Design",
			Status:   models.BlogStatusPublished,
			Tags:     []string{"UI/UX", "Design Strategy", "Brand Experience"},
			ReadTime: 5,
			Image:    "/images/blogs/ui-ux-design.png",
		},
		{
			Slug:    "scaling-with-custom-software",
			Title:   "Scaling Your Business with Custom Software Solutions",
			Excerpt: "Discover how purpose-built software empowers organizations to scale, automate, and compete with precision in a fast-evolving digital landscape.",
			Content: `As businesses grow, off-the-shelf software often becomes a constraint rather than a solution. Custom software development offers organizations the flexibility and control needed to scale efficiently while aligning technology with unique operational goals. Instead of adapting processes to fit generic tools, businesses can build systems that support their exact workflows.

Custom solutions enable seamless integration with existing platforms, automation of repetitive tasks, and real-time data visibility. This leads to improved productivity, reduced operational costs, and faster decision-making. In addition, scalable architectures ensure that systems grow alongside the business without performance bottlenecks.

Security and ownership are also major advantages of custom software. Organizations maintain full control over their data, infrastructure, and future enhancements. This is particularly important in industries with strict compliance requirements or sensitive information.

In a competitive digital environment, agility is key. Custom software empowers businesses to innovate faster, respond to market changes, and deliver superior customer experiences. By investing in tailored technology solutions, companies position themselves for sustainable growth and long-term success.`,
			Author:   "Tech Insight Writers",
			Category: "Software Development",
			Status:   models.BlogStatusPublished,
			Tags:     []string{"Business Growth", "Custom Software", "Automation"},
			ReadTime: 7,
			Image:    "/images/blogs/custom-software.jpeg",
		},
	}
}

func CaseStudies() []models.CaseStudy {
	return []models.CaseStudy{
		{
			Slug:         "ecommerce-boost",
			Title:        "Boosting Online Sales for a Fashion E-Commerce Brand",
			Industry:     "E-Commerce & Retail",
			Client:       "Styleify",
			Challenge:    "Client struggled with low conversion rates and abandoned carts despite high traffic.",
			Solution:     "We redesigned their Shopify storefront, optimized the checkout flow, and launched a targeted retargeting campaign.",
			Results:      "Conversion rate improved by 48% and cart abandonment dropped by 30% within 3 months.",
			Technologies: []string{"Shopify", "React", "Node.js", "Google Ads"},
			Status:       models.BlogStatusPublished,
			Image:        "/images/case-studies/real-time.jpeg",
		},
		{
			Slug:         "superstore-sales-performance-dashboard",
			Title:        "Superstore Sales Performance Dashboard for Retail Insights",
			Industry:     "Retail & Consumer Goods",
			Client:       "Nationwide Superstore",
			Challenge:    "The client, a nationwide retail store, managed thousands of transactions across regions and product categories but lacked a clear overview of sales trends, profit margins, and customer segmentation.",
			Solution:     "We developed a fully interactive Power BI dashboard that consolidated sales, profit, and customer data into a single visual platform.",
			Results:      "The Power BI dashboard provided leadership with a 360° view of retail performance, helping them identify their top-performing categories and most profitable customer segments.",
			Technologies: []string{"Power BI", "Microsoft Excel", "DAX", "Data Modeling"},
			Status:       models.BlogStatusPublished,
			Image:        "/images/case-studies/superstore-sales-performance-dashboard.jpeg",
		},
	}
}

// Stats returns the landing-page counters shown when the stats document has
// never been written.
func Stats() models.StatsData {
	return models.StatsData{
		HappyClients:       150,
		ProjectsDone:       220,
		ClientSatisfaction: 98,
		TotalRevenue:       500000,
	}
}
