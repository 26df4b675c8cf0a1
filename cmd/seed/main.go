package main

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/portfolio-backend/internal/database"
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

// Seeds the admin user and sample content. Safe to run repeatedly:
// existing rows are left alone.
func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Info(".env not found, using environment variables")
		}
	}

	db, err := database.Connect()
	if err != nil {
		logrus.Fatalf("Postgres connect failed: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		logrus.Fatalf("seed admin: %v", err)
	}
	if err := seedAbout(db); err != nil {
		logrus.Fatalf("seed about: %v", err)
	}
	if err := seedProjects(db); err != nil {
		logrus.Fatalf("seed projects: %v", err)
	}
	if err := seedSkills(db); err != nil {
		logrus.Fatalf("seed skills: %v", err)
	}

	logrus.Info("Database seeded")
	logrus.Info("Admin credentials: admin / admin123")
}

func seedAdmin(db *database.Database) error {
	_, err := db.GetUserByUsername("admin")
	if err == nil {
		logrus.Info("admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.CreateUser(&models.User{
		Username: "admin",
		Password: string(hash),
		IsAdmin:  true,
	})
}

func seedAbout(db *database.Database) error {
	if _, err := db.GetAbout(); err == nil {
		logrus.Info("about info already exists, skipping")
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	_, err := db.UpsertAbout(&models.AboutInfo{
		Name:        "Your Name",
		Title:       "Full Stack Developer & 3D Enthusiast",
		Bio:         "I'm a passionate developer specializing in creating immersive web experiences with cutting-edge technologies. My expertise lies in WebGL, Three.js, and modern web development frameworks.\n\nI love pushing the boundaries of what's possible on the web, combining beautiful design with powerful functionality.",
		Email:       "contact@example.com",
		GithubURL:   "https://github.com",
		LinkedinURL: "https://linkedin.com",
		TwitterURL:  "https://twitter.com",
	})
	return err
}

func seedProjects(db *database.Database) error {
	existing, err := db.ListProjects()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Info("projects already exist, skipping")
		return nil
	}

	projects := []models.Project{
		{
			Title:           "3D Portfolio Website",
			Description:     "An immersive 3D portfolio showcasing projects with WebGL and Three.js",
			LongDescription: "A cutting-edge portfolio website featuring advanced 3D visualizations, particle systems, and post-processing effects. Built with React Three Fiber and modern web technologies.",
			Technologies:    []string{"React", "Three.js", "TypeScript", "Tailwind CSS", "WebGL"},
			Featured:        true,
			Order:           1,
		},
		{
			Title:           "Interactive Data Visualization",
			Description:     "Real-time data visualization dashboard with 3D charts and animations",
			LongDescription: "An interactive dashboard for visualizing complex datasets in 3D space, with smooth animations and intuitive controls.",
			Technologies:    []string{"React", "D3.js", "Three.js", "Node.js"},
			Featured:        true,
			Order:           2,
		},
		{
			Title:           "WebGL Game Engine",
			Description:     "Custom game engine built with WebGL and modern JavaScript",
			LongDescription: "A lightweight game engine with physics simulation, particle systems, and efficient rendering pipeline.",
			Technologies:    []string{"WebGL", "JavaScript", "GLSL", "Physics Engine"},
			Featured:        false,
			Order:           3,
		},
	}
	for i := range projects {
		projects[i].CreatedAt = time.Now()
		if err := db.CreateProject(&projects[i]); err != nil {
			return err
		}
	}
	logrus.Infof("%d sample projects created", len(projects))
	return nil
}

func seedSkills(db *database.Database) error {
	existing, err := db.ListSkills()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Info("skills already exist, skipping")
		return nil
	}

	skills := []models.Skill{
		{Name: "React", Category: "Frontend", Proficiency: 95, Order: 1},
		{Name: "Three.js", Category: "3D/Graphics", Proficiency: 90, Order: 2},
		{Name: "TypeScript", Category: "Frontend", Proficiency: 90, Order: 3},
		{Name: "Node.js", Category: "Backend", Proficiency: 85, Order: 4},
		{Name: "WebGL", Category: "3D/Graphics", Proficiency: 85, Order: 5},
		{Name: "GSAP", Category: "Frontend", Proficiency: 80, Order: 6},
		{Name: "PostgreSQL", Category: "Backend", Proficiency: 80, Order: 7},
		{Name: "Express", Category: "Backend", Proficiency: 85, Order: 8},
		{Name: "Tailwind CSS", Category: "Frontend", Proficiency: 90, Order: 9},
		{Name: "Blender", Category: "3D/Graphics", Proficiency: 75, Order: 10},
		{Name: "Git", Category: "Tools", Proficiency: 90, Order: 11},
		{Name: "Docker", Category: "Tools", Proficiency: 75, Order: 12},
	}
	for i := range skills {
		if err := db.CreateSkill(&skills[i]); err != nil {
			return err
		}
	}
	logrus.Infof("%d sample skills created", len(skills))
	return nil
}
