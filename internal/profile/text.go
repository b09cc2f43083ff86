package profile

var (
	AboutIntro = `I'm a passionate Full Stack Developer and AI enthusiast currently pursuing
	B.Sc. (Hons) Computer Science at the University of Delhi.`

	AboutJourney = `My journey in tech started with curiosity about how applications work,
	and now I'm building scalable web applications while diving deep into the world of
	Artificial Intelligence.`

	AboutGoal = `As a GATE DA aspirant, I'm working towards my goal of becoming an AI Engineer,
	combining my development skills with cutting-edge AI technologies.`

	ProjectChat = `A modern chat application with real-time messaging, built with Socket.IO
	and Redis for scalability.`

	ProjectInterview = `Voice-only AI interview preparation app with real-time TTS/STT integration.`

	ProjectCoaching = `Role-based system for managing students, teachers, and administrative tasks.`

	ProjectResume = `Dynamic resume builder with multiple templates and export functionality.`

	ContactIntro = `I'm always open to discussing new opportunities, collaborating on
	interesting projects, or just having a chat about technology and AI.`
)
